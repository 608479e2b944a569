package geo

import (
	"fmt"
	"math"
)

// countryTimezones maps ISO country codes to the country's most common
// IANA timezone. Static configuration, not logic; unmapped codes fall
// back to a longitude estimate.
var countryTimezones = map[string]string{
	// Asia
	"JP": "Asia/Tokyo",
	"CN": "Asia/Shanghai",
	"KR": "Asia/Seoul",
	"IN": "Asia/Kolkata",
	"ID": "Asia/Jakarta",
	"MY": "Asia/Kuala_Lumpur",
	"SG": "Asia/Singapore",
	"TH": "Asia/Bangkok",
	"VN": "Asia/Ho_Chi_Minh",
	"PH": "Asia/Manila",
	"PK": "Asia/Karachi",
	"BD": "Asia/Dhaka",
	"NP": "Asia/Kathmandu",
	"LK": "Asia/Colombo",
	"MM": "Asia/Yangon",
	"KH": "Asia/Phnom_Penh",
	"LA": "Asia/Vientiane",
	"BN": "Asia/Brunei",
	"TW": "Asia/Taipei",
	"HK": "Asia/Hong_Kong",
	"MO": "Asia/Macau",
	// Middle East
	"SA": "Asia/Riyadh",
	"AE": "Asia/Dubai",
	"QA": "Asia/Qatar",
	"KW": "Asia/Kuwait",
	"BH": "Asia/Bahrain",
	"OM": "Asia/Muscat",
	"YE": "Asia/Aden",
	"JO": "Asia/Amman",
	"LB": "Asia/Beirut",
	"SY": "Asia/Damascus",
	"IQ": "Asia/Baghdad",
	"IR": "Asia/Tehran",
	"IL": "Asia/Jerusalem",
	"PS": "Asia/Gaza",
	"TR": "Europe/Istanbul",
	// Africa
	"EG": "Africa/Cairo",
	"MA": "Africa/Casablanca",
	"DZ": "Africa/Algiers",
	"TN": "Africa/Tunis",
	"LY": "Africa/Tripoli",
	"SD": "Africa/Khartoum",
	"NG": "Africa/Lagos",
	"KE": "Africa/Nairobi",
	"ZA": "Africa/Johannesburg",
	"ET": "Africa/Addis_Ababa",
	"TZ": "Africa/Dar_es_Salaam",
	// Europe
	"GB": "Europe/London",
	"FR": "Europe/Paris",
	"DE": "Europe/Berlin",
	"IT": "Europe/Rome",
	"ES": "Europe/Madrid",
	"PT": "Europe/Lisbon",
	"NL": "Europe/Amsterdam",
	"BE": "Europe/Brussels",
	"CH": "Europe/Zurich",
	"AT": "Europe/Vienna",
	"PL": "Europe/Warsaw",
	"CZ": "Europe/Prague",
	"HU": "Europe/Budapest",
	"RO": "Europe/Bucharest",
	"BG": "Europe/Sofia",
	"GR": "Europe/Athens",
	"SE": "Europe/Stockholm",
	"NO": "Europe/Oslo",
	"DK": "Europe/Copenhagen",
	"FI": "Europe/Helsinki",
	"IE": "Europe/Dublin",
	"RU": "Europe/Moscow",
	"UA": "Europe/Kiev",
	// Americas
	"US": "America/New_York",
	"CA": "America/Toronto",
	"MX": "America/Mexico_City",
	"BR": "America/Sao_Paulo",
	"AR": "America/Buenos_Aires",
	"CL": "America/Santiago",
	"CO": "America/Bogota",
	"PE": "America/Lima",
	"VE": "America/Caracas",
	// Oceania
	"AU": "Australia/Sydney",
	"NZ": "Pacific/Auckland",
	"FJ": "Pacific/Fiji",
}

// DefaultMethod is the worldwide calculation method (Muslim World
// League) used when no country-specific convention applies.
const DefaultMethod = 3

// countryMethods maps ISO country codes to the regional AlAdhan
// calculation method code.
var countryMethods = map[string]int{
	// Islamic Society of North America
	"US": 2,
	"CA": 2,
	// Egyptian General Authority
	"EG": 5,
	// Umm Al-Qura University, Makkah
	"SA": 4,
	"AE": 4,
	"QA": 4,
	"KW": 4,
	"BH": 4,
	"OM": 4,
	"YE": 4,
	// University of Islamic Sciences, Karachi
	"PK": 1,
	"AF": 1,
	"BD": 1,
	// Institute of Geophysics, University of Tehran
	"IR": 7,
	// Shia Ithna-Ashari, Leva Institute, Qum
	"IQ": 0,
	// Ministry of Religious Affairs, Indonesia
	"ID": 11,
	"SG": 11,
	"BN": 11,
	// Muslim World League
	"MY": 3,
	"GB": 3,
	"DE": 3,
	"FR": 3,
	"NL": 3,
	"BE": 3,
	// Diyanet Isleri Baskanligi, Turkey
	"TR": 13,
	// Spiritual Administration of Muslims of Russia
	"RU": 14,
}

// TimezoneFor resolves an IANA timezone for a coordinate and country
// code. Unmapped countries get a longitude-based Etc/GMT estimate;
// note Etc/GMT zone names use the inverted sign convention.
func TimezoneFor(lng float64, countryCode string) string {
	if tz, ok := countryTimezones[countryCode]; ok {
		return tz
	}

	offset := int(math.Round(lng / 15))
	if offset <= 0 {
		return fmt.Sprintf("Etc/GMT+%d", -offset)
	}
	return fmt.Sprintf("Etc/GMT-%d", offset)
}

// MethodFor resolves the calculation method for a country code,
// defaulting to DefaultMethod.
func MethodFor(countryCode string) int {
	if m, ok := countryMethods[countryCode]; ok {
		return m
	}
	return DefaultMethod
}
