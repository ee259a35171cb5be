// Package unit defines the static registry of measurement units the
// engine can convert between. Units are grouped into categories; every
// unit carries a linear factor to its category's base unit, so a
// conversion is a single multiply-divide. Temperature lives in its own
// table because its conversion is affine, not linear.
package unit

// Category identifies a family of mutually convertible units.
type Category int

const (
	Length Category = iota
	Area
	Volume
	Mass
	Time
	Speed
	Pressure
	Energy
	Power
	Frequency
	Data
	Force
)

var categoryNames = map[Category]string{
	Length:    "Length",
	Area:      "Area",
	Volume:    "Volume",
	Mass:      "Mass",
	Time:      "Time",
	Speed:     "Speed",
	Pressure:  "Pressure",
	Energy:    "Energy",
	Power:     "Power",
	Frequency: "Frequency",
	Data:      "Data",
	Force:     "Force",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Def describes a single unit: the strings a user may type for it, its
// display label and symbol, and the multiplier converting one unit to
// the category's base unit.
type Def struct {
	Aliases []string
	Label   string
	Symbol  string
	ToBase  float64
}

// Table is one category's ordered unit list. The first unit with
// ToBase == 1 is the base unit by convention.
type Table struct {
	Category Category
	Units    []Def
}

// Convert projects a value from one unit to another. Both must belong
// to the same category; the caller is responsible for that check.
func Convert(value float64, from, to *Def) float64 {
	return value * from.ToBase / to.ToBase
}

// Tables returns the full unit registry. The slice and its contents are
// defined at startup and never mutated.
func Tables() []Table {
	return tables
}

var tables = []Table{
	{Category: Length, Units: []Def{
		{Aliases: []string{"m", "meter", "meters", "metre", "metres"}, Label: "Meters", Symbol: "m", ToBase: 1},
		{Aliases: []string{"km", "kilometer", "kilometers", "kilometre", "kilometres"}, Label: "Kilometers", Symbol: "km", ToBase: 1000},
		{Aliases: []string{"dm", "decimeter", "decimeters"}, Label: "Decimeters", Symbol: "dm", ToBase: 0.1},
		{Aliases: []string{"cm", "centimeter", "centimeters", "centimetre", "centimetres"}, Label: "Centimeters", Symbol: "cm", ToBase: 0.01},
		{Aliases: []string{"mm", "millimeter", "millimeters", "millimetre", "millimetres"}, Label: "Millimeters", Symbol: "mm", ToBase: 0.001},
		{Aliases: []string{"um", "micrometer", "micrometers", "micron", "microns"}, Label: "Micrometers", Symbol: "µm", ToBase: 1e-6},
		{Aliases: []string{"nanometer", "nanometers", "nanometre"}, Label: "Nanometers", Symbol: "nm", ToBase: 1e-9},
		{Aliases: []string{"in", "inch", "inches", "\""}, Label: "Inches", Symbol: "in", ToBase: 0.0254},
		{Aliases: []string{"ft", "foot", "feet", "'"}, Label: "Feet", Symbol: "ft", ToBase: 0.3048},
		{Aliases: []string{"yd", "yard", "yards"}, Label: "Yards", Symbol: "yd", ToBase: 0.9144},
		{Aliases: []string{"mi", "mile", "miles"}, Label: "Miles", Symbol: "mi", ToBase: 1609.34},
		{Aliases: []string{"nmi", "nautical mile", "nautical miles"}, Label: "Nautical Miles", Symbol: "nmi", ToBase: 1852},
		{Aliases: []string{"ly", "lightyear", "lightyears", "light year", "light years"}, Label: "Light Years", Symbol: "ly", ToBase: 9.461e15},
		{Aliases: []string{"au", "astronomical unit", "astronomical units"}, Label: "Astronomical Units", Symbol: "au", ToBase: 1.496e11},
	}},
	{Category: Area, Units: []Def{
		{Aliases: []string{"m2", "sqm", "sq meter", "sq meters"}, Label: "Square Meters", Symbol: "m²", ToBase: 1},
		{Aliases: []string{"km2", "sqkm", "sq kilometer", "sq kilometers"}, Label: "Square Kilometers", Symbol: "km²", ToBase: 1e6},
		{Aliases: []string{"cm2", "sqcm", "sq centimeter", "sq centimeters"}, Label: "Square Centimeters", Symbol: "cm²", ToBase: 1e-4},
		{Aliases: []string{"mm2", "sqmm", "sq millimeter", "sq millimeters"}, Label: "Square Millimeters", Symbol: "mm²", ToBase: 1e-6},
		{Aliases: []string{"in2", "sqin", "sq inch", "sq inches"}, Label: "Square Inches", Symbol: "in²", ToBase: 0.00064516},
		{Aliases: []string{"ft2", "sqft", "sq foot", "sq feet"}, Label: "Square Feet", Symbol: "ft²", ToBase: 0.092903},
		{Aliases: []string{"yd2", "sqyd", "sq yard", "sq yards"}, Label: "Square Yards", Symbol: "yd²", ToBase: 0.836127},
		{Aliases: []string{"mi2", "sqmi", "sq mile", "sq miles"}, Label: "Square Miles", Symbol: "mi²", ToBase: 2.59e6},
		{Aliases: []string{"ha", "hectare", "hectares"}, Label: "Hectares", Symbol: "ha", ToBase: 10000},
		{Aliases: []string{"acre", "acres"}, Label: "Acres", Symbol: "ac", ToBase: 4046.86},
	}},
	{Category: Volume, Units: []Def{
		{Aliases: []string{"m3", "cum", "cu meter", "cu meters"}, Label: "Cubic Meters", Symbol: "m³", ToBase: 1},
		{Aliases: []string{"l", "liter", "liters", "litre", "litres"}, Label: "Liters", Symbol: "L", ToBase: 0.001},
		{Aliases: []string{"ml", "milliliter", "milliliters", "millilitre", "millilitres"}, Label: "Milliliters", Symbol: "mL", ToBase: 1e-6},
		{Aliases: []string{"cm3", "cucm", "cu centimeter", "cu centimeters", "cc"}, Label: "Cubic Centimeters", Symbol: "cm³", ToBase: 1e-6},
		{Aliases: []string{"gal", "gallon", "gallons"}, Label: "Gallons (US)", Symbol: "gal", ToBase: 0.00378541},
		{Aliases: []string{"ukgal", "uk gallon", "uk gallons", "imperial gallon", "imperial gallons"}, Label: "Gallons (UK)", Symbol: "gal (UK)", ToBase: 0.00454609},
		{Aliases: []string{"qt", "quart", "quarts"}, Label: "Quarts", Symbol: "qt", ToBase: 0.000946353},
		{Aliases: []string{"pt", "pint", "pints"}, Label: "Pints (US)", Symbol: "pt", ToBase: 0.000473176},
		{Aliases: []string{"floz", "fluid ounce", "fluid ounces", "fl oz"}, Label: "Fluid Ounces", Symbol: "fl oz", ToBase: 2.95735e-5},
	}},
	{Category: Mass, Units: []Def{
		{Aliases: []string{"kg", "kilogram", "kilograms", "kilo", "kilos"}, Label: "Kilograms", Symbol: "kg", ToBase: 1},
		{Aliases: []string{"g", "gram", "grams"}, Label: "Grams", Symbol: "g", ToBase: 0.001},
		{Aliases: []string{"mg", "milligram", "milligrams"}, Label: "Milligrams", Symbol: "mg", ToBase: 1e-6},
		{Aliases: []string{"ug", "microgram", "micrograms"}, Label: "Micrograms", Symbol: "µg", ToBase: 1e-9},
		{Aliases: []string{"t", "tonne", "tonnes", "metric ton", "metric tons"}, Label: "Metric Tonnes", Symbol: "t", ToBase: 1000},
		{Aliases: []string{"lb", "lbs", "pound", "pounds"}, Label: "Pounds", Symbol: "lb", ToBase: 0.453592},
		{Aliases: []string{"oz", "ounce", "ounces"}, Label: "Ounces", Symbol: "oz", ToBase: 0.0283495},
		{Aliases: []string{"st", "stone", "stones"}, Label: "Stones", Symbol: "st", ToBase: 6.35029},
		{Aliases: []string{"ust", "us ton", "us tons", "short ton", "short tons"}, Label: "US Short Tons", Symbol: "ton (US)", ToBase: 907.185},
		{Aliases: []string{"ukt", "uk ton", "uk tons", "long ton", "long tons"}, Label: "UK Long Tons", Symbol: "ton (UK)", ToBase: 1016.05},
	}},
	{Category: Time, Units: []Def{
		{Aliases: []string{"s", "sec", "secs", "second", "seconds"}, Label: "Seconds", Symbol: "s", ToBase: 1},
		{Aliases: []string{"ms", "millisecond", "milliseconds"}, Label: "Milliseconds", Symbol: "ms", ToBase: 0.001},
		{Aliases: []string{"us", "microsecond", "microseconds"}, Label: "Microseconds", Symbol: "µs", ToBase: 1e-6},
		{Aliases: []string{"ns", "nanosecond", "nanoseconds"}, Label: "Nanoseconds", Symbol: "ns", ToBase: 1e-9},
		{Aliases: []string{"min", "mins", "minute", "minutes"}, Label: "Minutes", Symbol: "min", ToBase: 60},
		{Aliases: []string{"hr", "hrs", "hour", "hours"}, Label: "Hours", Symbol: "h", ToBase: 3600},
		{Aliases: []string{"day", "days"}, Label: "Days", Symbol: "d", ToBase: 86400},
		{Aliases: []string{"week", "weeks", "wk"}, Label: "Weeks", Symbol: "wk", ToBase: 604800},
		{Aliases: []string{"month", "months"}, Label: "Months", Symbol: "mo", ToBase: 2.628e6},
		{Aliases: []string{"year", "years", "yr", "yrs"}, Label: "Years", Symbol: "yr", ToBase: 3.154e7},
	}},
	{Category: Speed, Units: []Def{
		{Aliases: []string{"mps", "m/s", "meters/second", "meters per second"}, Label: "Meters per Second", Symbol: "m/s", ToBase: 1},
		{Aliases: []string{"kph", "km/h", "kmh", "kilometers/hour", "kilometers per hour"}, Label: "Kilometers per Hour", Symbol: "km/h", ToBase: 1.0 / 3.6},
		{Aliases: []string{"mph", "mi/h", "miles/hour", "miles per hour"}, Label: "Miles per Hour", Symbol: "mph", ToBase: 0.44704},
		{Aliases: []string{"fps", "ft/s", "feet/second", "feet per second"}, Label: "Feet per Second", Symbol: "ft/s", ToBase: 0.3048},
		{Aliases: []string{"kn", "knot", "knots"}, Label: "Knots", Symbol: "kn", ToBase: 0.514444},
	}},
	{Category: Pressure, Units: []Def{
		{Aliases: []string{"pa", "pascal", "pascals"}, Label: "Pascals", Symbol: "Pa", ToBase: 1},
		{Aliases: []string{"kpa", "kilopascal", "kilopascals"}, Label: "Kilopascals", Symbol: "kPa", ToBase: 1000},
		{Aliases: []string{"mpa", "megapascal", "megapascals"}, Label: "Megapascals", Symbol: "MPa", ToBase: 1e6},
		{Aliases: []string{"bar", "bars"}, Label: "Bars", Symbol: "bar", ToBase: 100000},
		{Aliases: []string{"mbar", "millibar", "millibars"}, Label: "Millibars", Symbol: "mbar", ToBase: 100},
		{Aliases: []string{"psi"}, Label: "Pounds per Square Inch", Symbol: "psi", ToBase: 6894.76},
		{Aliases: []string{"atm", "atmosphere", "atmospheres"}, Label: "Atmospheres", Symbol: "atm", ToBase: 101325},
		{Aliases: []string{"torr"}, Label: "Torr", Symbol: "Torr", ToBase: 133.322},
	}},
	{Category: Energy, Units: []Def{
		{Aliases: []string{"j", "joule", "joules"}, Label: "Joules", Symbol: "J", ToBase: 1},
		{Aliases: []string{"kj", "kilojoule", "kilojoules"}, Label: "Kilojoules", Symbol: "kJ", ToBase: 1000},
		{Aliases: []string{"mj", "megajoule", "megajoules"}, Label: "Megajoules", Symbol: "MJ", ToBase: 1e6},
		{Aliases: []string{"cal", "calorie", "calories"}, Label: "Calories", Symbol: "cal", ToBase: 4.184},
		{Aliases: []string{"kcal", "kilocalorie", "kilocalories"}, Label: "Kilocalories", Symbol: "kcal", ToBase: 4184},
		{Aliases: []string{"wh", "watt hour", "watt hours"}, Label: "Watt Hours", Symbol: "Wh", ToBase: 3600},
		{Aliases: []string{"kwh", "kilowatt hour", "kilowatt hours"}, Label: "Kilowatt Hours", Symbol: "kWh", ToBase: 3.6e6},
		{Aliases: []string{"ev", "electronvolt", "electronvolts"}, Label: "Electronvolts", Symbol: "eV", ToBase: 1.6022e-19},
		{Aliases: []string{"btu"}, Label: "British Thermal Units", Symbol: "BTU", ToBase: 1055.06},
		{Aliases: []string{"ftlb", "foot pound", "foot pounds"}, Label: "Foot Pounds", Symbol: "ft·lb", ToBase: 1.35582},
	}},
	{Category: Power, Units: []Def{
		{Aliases: []string{"w", "watt", "watts"}, Label: "Watts", Symbol: "W", ToBase: 1},
		{Aliases: []string{"kw", "kilowatt", "kilowatts"}, Label: "Kilowatts", Symbol: "kW", ToBase: 1000},
		{Aliases: []string{"mw", "megawatt", "megawatts"}, Label: "Megawatts", Symbol: "MW", ToBase: 1e6},
		{Aliases: []string{"gw", "gigawatt", "gigawatts"}, Label: "Gigawatts", Symbol: "GW", ToBase: 1e9},
		{Aliases: []string{"hp", "horsepower"}, Label: "Horsepower", Symbol: "hp", ToBase: 745.7},
	}},
	{Category: Frequency, Units: []Def{
		{Aliases: []string{"hz", "hertz"}, Label: "Hertz", Symbol: "Hz", ToBase: 1},
		{Aliases: []string{"khz", "kilohertz"}, Label: "Kilohertz", Symbol: "kHz", ToBase: 1000},
		{Aliases: []string{"mhz", "megahertz"}, Label: "Megahertz", Symbol: "MHz", ToBase: 1e6},
		{Aliases: []string{"ghz", "gigahertz"}, Label: "Gigahertz", Symbol: "GHz", ToBase: 1e9},
		{Aliases: []string{"rpm", "revolutions per minute"}, Label: "Revolutions per Minute", Symbol: "rpm", ToBase: 1.0 / 60.0},
	}},
	{Category: Data, Units: []Def{
		{Aliases: []string{"b", "byte", "bytes"}, Label: "Bytes", Symbol: "B", ToBase: 1},
		{Aliases: []string{"bit", "bits"}, Label: "Bits", Symbol: "bit", ToBase: 0.125},
		{Aliases: []string{"kb", "kilobyte", "kilobytes"}, Label: "Kilobytes", Symbol: "KB", ToBase: 1000},
		{Aliases: []string{"mb", "megabyte", "megabytes"}, Label: "Megabytes", Symbol: "MB", ToBase: 1e6},
		{Aliases: []string{"gb", "gigabyte", "gigabytes"}, Label: "Gigabytes", Symbol: "GB", ToBase: 1e9},
		{Aliases: []string{"tb", "terabyte", "terabytes"}, Label: "Terabytes", Symbol: "TB", ToBase: 1e12},
		{Aliases: []string{"pb", "petabyte", "petabytes"}, Label: "Petabytes", Symbol: "PB", ToBase: 1e15},
		{Aliases: []string{"kib", "kibibyte", "kibibytes"}, Label: "Kibibytes", Symbol: "KiB", ToBase: 1024},
		{Aliases: []string{"mib", "mebibyte", "mebibytes"}, Label: "Mebibytes", Symbol: "MiB", ToBase: 1048576},
		{Aliases: []string{"gib", "gibibyte", "gibibytes"}, Label: "Gibibytes", Symbol: "GiB", ToBase: 1073741824},
	}},
	{Category: Force, Units: []Def{
		{Aliases: []string{"newton", "newtons"}, Label: "Newtons", Symbol: "N", ToBase: 1},
		{Aliases: []string{"kilonewton", "kilonewtons"}, Label: "Kilonewtons", Symbol: "kN", ToBase: 1000},
		{Aliases: []string{"lbf", "pound force"}, Label: "Pound-Force", Symbol: "lbf", ToBase: 4.44822},
		{Aliases: []string{"kgf", "kilogram force"}, Label: "Kilogram-Force", Symbol: "kgf", ToBase: 9.80665},
		{Aliases: []string{"dyn", "dyne", "dynes"}, Label: "Dynes", Symbol: "dyn", ToBase: 1e-5},
	}},
}
