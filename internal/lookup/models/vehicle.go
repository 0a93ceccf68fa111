package models

// VehicleRecord is the canonical registration record. Every string field
// holds NA when the source did not supply it.
type VehicleRecord struct {
	RegistrationNumber string     `json:"registration_number"`
	OwnerName          string     `json:"owner_name"`
	FatherName         string     `json:"father_name"`
	Address            string     `json:"address"`
	Pincode            string     `json:"pincode"`
	Mobile             string     `json:"mobile"`
	VehicleClass       string     `json:"vehicle_class"`
	Maker              string     `json:"maker"`
	Model              string     `json:"model"`
	FuelType           string     `json:"fuel_type"`
	RegistrationDate   string     `json:"registration_date"`
	RegistrationUpto   string     `json:"registration_upto"`
	FitnessUpto        string     `json:"fitness_upto"`
	InsuranceUpto      string     `json:"insurance_upto"`
	PUCUpto            string     `json:"puc_upto"`
	VehicleColor       string     `json:"vehicle_color"`
	EngineNumber       string     `json:"engine_number"`
	ChassisNumber      string     `json:"chassis_number"`
	BlacklistStatus    string     `json:"blacklist_status"`
	RCStatus           string     `json:"rc_status"`
	VehicleAgeYears    VehicleAge `json:"vehicle_age_years"`
}

// Field is one labelled value of a canonical record, in display order.
type Field struct {
	Key   string
	Label string
	Value string
}

// NewVehicleRecord returns a record with every field set to NA.
func NewVehicleRecord() VehicleRecord {
	var r VehicleRecord
	for _, p := range r.pointers() {
		*p = NA
	}
	r.VehicleAgeYears = AgeUnknown()
	return r
}

// Fields lists the record's values in canonical order.
func (r VehicleRecord) Fields() []Field {
	return []Field{
		{"registration_number", "Registration Number", r.RegistrationNumber},
		{"owner_name", "Owner Name", r.OwnerName},
		{"father_name", "Father Name", r.FatherName},
		{"address", "Address", r.Address},
		{"pincode", "Pincode", r.Pincode},
		{"mobile", "Mobile", r.Mobile},
		{"vehicle_class", "Vehicle Class", r.VehicleClass},
		{"maker", "Maker", r.Maker},
		{"model", "Model", r.Model},
		{"fuel_type", "Fuel Type", r.FuelType},
		{"registration_date", "Registration Date", r.RegistrationDate},
		{"registration_upto", "Registration Upto", r.RegistrationUpto},
		{"fitness_upto", "Fitness Upto", r.FitnessUpto},
		{"insurance_upto", "Insurance Upto", r.InsuranceUpto},
		{"puc_upto", "Puc Upto", r.PUCUpto},
		{"vehicle_color", "Vehicle Color", r.VehicleColor},
		{"engine_number", "Engine Number", r.EngineNumber},
		{"chassis_number", "Chassis Number", r.ChassisNumber},
		{"blacklist_status", "Blacklist Status", r.BlacklistStatus},
		{"rc_status", "Rc Status", r.RCStatus},
		{"vehicle_age_years", "Vehicle Age Years", r.VehicleAgeYears.String()},
	}
}

// Set assigns a string field by canonical key. Unknown keys and
// vehicle_age_years are ignored and reported as false.
func (r *VehicleRecord) Set(key, value string) bool {
	p, ok := r.pointerByKey()[key]
	if !ok {
		return false
	}
	*p = value
	return true
}

// Complete replaces empty string fields with NA.
func (r VehicleRecord) Complete() VehicleRecord {
	for _, p := range r.pointers() {
		if *p == "" {
			*p = NA
		}
	}
	return r
}

func (r *VehicleRecord) pointers() []*string {
	return []*string{
		&r.RegistrationNumber, &r.OwnerName, &r.FatherName, &r.Address, &r.Pincode,
		&r.Mobile, &r.VehicleClass, &r.Maker, &r.Model, &r.FuelType,
		&r.RegistrationDate, &r.RegistrationUpto, &r.FitnessUpto, &r.InsuranceUpto,
		&r.PUCUpto, &r.VehicleColor, &r.EngineNumber, &r.ChassisNumber,
		&r.BlacklistStatus, &r.RCStatus,
	}
}

func (r *VehicleRecord) pointerByKey() map[string]*string {
	return map[string]*string{
		"registration_number": &r.RegistrationNumber,
		"owner_name":          &r.OwnerName,
		"father_name":         &r.FatherName,
		"address":             &r.Address,
		"pincode":             &r.Pincode,
		"mobile":              &r.Mobile,
		"vehicle_class":       &r.VehicleClass,
		"maker":               &r.Maker,
		"model":               &r.Model,
		"fuel_type":           &r.FuelType,
		"registration_date":   &r.RegistrationDate,
		"registration_upto":   &r.RegistrationUpto,
		"fitness_upto":        &r.FitnessUpto,
		"insurance_upto":      &r.InsuranceUpto,
		"puc_upto":            &r.PUCUpto,
		"vehicle_color":       &r.VehicleColor,
		"engine_number":       &r.EngineNumber,
		"chassis_number":      &r.ChassisNumber,
		"blacklist_status":    &r.BlacklistStatus,
		"rc_status":           &r.RCStatus,
	}
}

// VehicleKeys lists the canonical string keys in display order.
func VehicleKeys() []string {
	fields := NewVehicleRecord().Fields()
	keys := make([]string, 0, len(fields)-1)
	for _, f := range fields {
		if f.Key != "vehicle_age_years" {
			keys = append(keys, f.Key)
		}
	}
	return keys
}
