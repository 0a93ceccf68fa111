package synthetic

var firstNames = []string{
	"Rajesh", "Amit", "Vikram", "Rahul", "Sanjay", "Mukesh", "Anil", "Sunil", "Deepak", "Ramesh",
}

var lastNames = []string{
	"Kumar", "Singh", "Sharma", "Verma", "Gupta", "Jain", "Agarwal", "Reddy", "Patel", "Yadav",
}

type maker struct {
	name   string
	models []string
}

var makers = []maker{
	{"Maruti Suzuki", []string{"Swift", "Baleno", "Dzire", "WagonR", "Alto", "Ertiga", "Vitara Brezza", "Celerio"}},
	{"Hyundai", []string{"i10", "i20", "Creta", "Venue", "Grand i10", "Verna", "Elantra", "Tucson"}},
	{"Tata", []string{"Tiago", "Nexon", "Altroz", "Harrier", "Safari", "Punch", "Tigor", "Zest"}},
	{"Mahindra", []string{"Scorpio", "XUV500", "Thar", "Bolero", "XUV300", "KUV100", "Marazzo", "XUV700"}},
	{"Honda", []string{"City", "Amaze", "WR-V", "Jazz", "Civic", "CR-V", "BR-V", "Brio"}},
	{"Toyota", []string{"Innova", "Fortuner", "Yaris", "Glanza", "Urban Cruiser", "Camry", "Prius", "Vellfire"}},
	{"Ford", []string{"Ecosport", "Figo", "Aspire", "Endeavour", "Freestyle", "Mustang"}},
	{"Volkswagen", []string{"Polo", "Vento", "Ameo", "Tiguan", "Passat", "Jetta"}},
	{"Renault", []string{"Kwid", "Triber", "Duster", "Captur"}},
	{"Nissan", []string{"Micra", "Sunny", "Kicks", "Magnite"}},
}

// DefaultAddress is used for state codes without a pool.
const DefaultAddress = "123, Main Road, City - 000000"

var addressPools = map[string][]string{
	"DL": {"123, Connaught Place, New Delhi - 110001", "456, Karol Bagh, Delhi - 110005", "789, Lajpat Nagar, Delhi - 110024"},
	"MH": {"123, Bandra West, Mumbai - 400050", "456, Shivaji Park, Mumbai - 400028", "789, Andheri East, Mumbai - 400069"},
	"KA": {"123, MG Road, Bangalore - 560001", "456, Koramangala, Bangalore - 560095", "789, Indiranagar, Bangalore - 560038"},
	"WB": {"123, Park Street, Kolkata - 700016", "456, Salt Lake, Kolkata - 700091", "789, Gariahat, Kolkata - 700029"},
	"TN": {"123, T. Nagar, Chennai - 600017", "456, Adyar, Chennai - 600020", "789, Anna Nagar, Chennai - 600040"},
	"GJ": {"123, CG Road, Ahmedabad - 380006", "456, Navrangpura, Ahmedabad - 380009", "789, Satellite, Ahmedabad - 380015"},
	"UP": {"123, Hazratganj, Lucknow - 226001", "456, Gomti Nagar, Lucknow - 226010", "789, Alambagh, Lucknow - 226005"},
}

var (
	vehicleClasses  = []string{"LMV - Motor Car", "MCWG - Motor Cycle With Gear", "MCWOG - Motor Cycle Without Gear"}
	fuelTypes       = []string{"PETROL", "DIESEL", "CNG", "LPG", "ELECTRIC"}
	colours         = []string{"WHITE", "SILVER", "BLACK", "RED", "BLUE", "GREY"}
	enginePrefixes  = []string{"AB", "CD", "EF", "GH"}
	chassisPrefixes = []string{"MA", "MB", "MC", "MD"}
)

type offence struct {
	section string
	desc    string
	amount  string
}

var offences = []offence{
	{"184", "Dangerous Driving", "2000"},
	{"177", "General Offence", "500"},
	{"119/177", "Disobedience of Order", "200"},
	{"179", "Refusal to Give Information", "500"},
	{"180", "Obstruction to Free Flow of Traffic", "500"},
	{"181", "Unauthorised Use of Vehicles", "2000"},
	{"182", "Violation of Road Regulations", "500"},
	{"183", "Riding Without Helmet", "500"},
	{"185", "Driving by Drunken Person", "2000"},
	{"186", "Driving at Excessive Speed", "2000"},
	{"187", "Driving Dangerously", "2000"},
	{"188", "Racing and Trials of Speed", "500"},
	{"189", "Jaywalking", "500"},
	{"190", "Failure to Convey Information", "500"},
	{"191", "Failure to Produce Documents", "500"},
	{"192", "Unauthorized Parking", "200"},
	{"193", "Parking in Prohibited Places", "200"},
	{"194", "Refusal to Surrender License", "500"},
	{"194A", "Obstruction of Traffic", "500"},
	{"194B", "Violation of Road Rules", "500"},
}

var places = []string{
	"Main Road, City Center",
	"Highway NH-44",
	"MG Road, Market Area",
	"Station Road",
	"College Junction",
	"Airport Road",
	"Industrial Area",
	"Ring Road",
	"Palace Road",
	"Residential Area",
}

const (
	courtName    = "Traffic Court, City"
	courtAddress = "Main Road, City Center"
)
