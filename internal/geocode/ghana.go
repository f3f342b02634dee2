package geocode

// ghanaPlaces holds approximate centroids for Ghanaian districts and regions.
// It is a best-effort table; names are matched exactly as they appear in the
// Minerals Commission license export.
var ghanaPlaces = []Place{
	{"Accra", Coordinate{5.6037, -0.1870}},
	{"Accra District", Coordinate{5.6037, -0.1870}},
	{"Accra Metropolitan District", Coordinate{5.6037, -0.1870}},
	{"Greater Accra Region", Coordinate{5.8058, 0.0384}},

	{"Kumasi", Coordinate{6.6885, -1.6244}},
	{"Kumasi District", Coordinate{6.6885, -1.6244}},
	{"Ashanti Region", Coordinate{6.7470, -1.5209}},
	{"Obuasi", Coordinate{6.2023, -1.6766}},
	{"Obuasi District", Coordinate{6.2023, -1.6766}},
	{"Adansi North District", Coordinate{6.2833, -1.5333}},
	{"Adansi South District", Coordinate{6.1333, -1.5000}},

	{"Western Region", Coordinate{5.6548, -2.1856}},
	{"Sekondi Takoradi District", Coordinate{4.9016, -1.7831}},
	{"Takoradi", Coordinate{4.9016, -1.7831}},
	{"Tarkwa", Coordinate{5.3000, -1.9833}},
	{"Tarkwa Nsuaem District", Coordinate{5.3000, -1.9833}},
	{"Prestea Huni Valley District", Coordinate{5.4333, -2.1333}},
	{"Wassa Amenfi Central District", Coordinate{5.6167, -2.1667}},
	{"Wassa Amenfi East District", Coordinate{5.8000, -2.0000}},
	{"Wassa Amenfi West District", Coordinate{5.7500, -2.4167}},
	{"Wassa West District", Coordinate{5.3000, -2.0000}}, // roughly Tarkwa
	{"Ellembelle District", Coordinate{4.9833, -2.3333}},
	{"Jomoro District", Coordinate{5.0833, -2.6500}},
	{"Nzema East District", Coordinate{4.9667, -2.2667}},
	{"Bibiani/Anwiaso/Bekwai District", Coordinate{6.4500, -2.3333}},
	{"Sefwi Wiawso District", Coordinate{6.2000, -2.4833}},
	{"Aowin/Suaman District", Coordinate{5.7500, -2.6667}},

	{"Eastern Region", Coordinate{6.4258, -0.3700}},
	{"Koforidua", Coordinate{6.0945, -0.2608}},
	{"Koforidua District", Coordinate{6.0945, -0.2608}},
	{"Birim North District", Coordinate{6.3500, -1.0000}},
	{"Kwaebibirem District", Coordinate{6.0667, -0.8500}},
	{"Atiwa District", Coordinate{6.2167, -0.6000}},
	{"Denkyembour District", Coordinate{6.0833, -0.8667}},
	{"Fanteakwa District", Coordinate{6.3333, -0.4667}},
	{"Yilo Krobo District", Coordinate{6.2000, -0.1667}},
	{"Lower Manya District", Coordinate{6.1333, 0.0333}},
	{"Upper Manya District", Coordinate{6.3667, -0.0667}},
	{"Asuogyaman District", Coordinate{6.3333, 0.1167}},
	{"Akwapim South District", Coordinate{5.8667, -0.3167}},
	{"West Akim Municipal District", Coordinate{5.9667, -0.6333}},
	{"East Akim Municipal District", Coordinate{6.2333, -0.5333}},

	{"Central Region", Coordinate{5.5505, -1.3328}},
	{"Cape Coast", Coordinate{5.1053, -1.2466}},
	{"Cape Coast District", Coordinate{5.1053, -1.2466}},
	{"Assin North District", Coordinate{5.6167, -1.3333}},
	{"Assin South District", Coordinate{5.5000, -1.2000}},
	{"Upper Denkyira East District", Coordinate{5.9500, -1.8833}},
	{"Upper Denkyira West District", Coordinate{6.0500, -2.0667}},
	{"Abura/Asebu/Kwamankese District", Coordinate{5.2500, -1.1833}},
	{"Mfantsiman  Municipality District", Coordinate{5.2667, -1.1000}},
	{"Komenda/Edina Eguafo/Abrem District", Coordinate{5.1000, -1.4500}},
	{"Agona East District", Coordinate{5.6000, -0.7333}},
	{"Asikuma/Odoben/Brakwa District", Coordinate{5.7000, -0.9667}},
	{"Twifo/Heman/Lower Denkyira District", Coordinate{5.7333, -1.6500}},

	{"Brong Ahafo Region", Coordinate{7.5821, -1.9351}}, // pre-2019 region name
	{"Bono Region", Coordinate{7.5821, -1.9351}},
	{"Ahafo Region", Coordinate{6.9167, -2.5000}},
	{"Bono East Region", Coordinate{7.7500, -1.0000}},
	{"Sunyani District", Coordinate{7.3333, -2.3167}},
	{"Sunyani Municipal District", Coordinate{7.3333, -2.3167}},
	{"Asutifi North District", Coordinate{6.9667, -2.3833}},
	{"Asutifi South District", Coordinate{6.8500, -2.4500}},
	{"Tano North District", Coordinate{7.2167, -2.2000}},
	{"Tano South District", Coordinate{7.1000, -2.0500}},
	{"Wenchi Municipal District", Coordinate{7.7333, -2.1000}},
	{"Techiman District", Coordinate{7.5833, -1.9333}},
	{"Dormaa Municipal District", Coordinate{7.2833, -2.8833}},

	{"Northern Region", Coordinate{9.5439, -0.9057}},
	{"Tamale District", Coordinate{9.4075, -0.8534}},
	{"Bole District", Coordinate{9.0333, -2.4833}},
	{"Zabzugu District", Coordinate{9.2833, 0.3667}},

	{"Upper East Region", Coordinate{10.7042, -0.5401}},
	{"Bolgatanga District", Coordinate{10.7856, -0.8514}},
	{"Bawku Municipal District", Coordinate{11.0616, -0.2417}},
	{"Bawku West District", Coordinate{10.9333, -0.4667}},
	{"Talensi District", Coordinate{10.7000, -0.7000}},
	{"Kassena Nankana West District", Coordinate{10.9000, -1.3333}},
	{"Kassena Nankana East District", Coordinate{10.8833, -1.0833}},

	{"Upper West Region", Coordinate{10.2789, -2.1648}},
	{"Wa District", Coordinate{10.0600, -2.5019}},
	{"Wa Municipal District", Coordinate{10.0600, -2.5019}},
	{"Wa East District", Coordinate{10.1667, -2.0000}},
	{"Lawra District", Coordinate{10.6333, -2.9000}},
	{"Jirapa District", Coordinate{10.5333, -2.7000}},
	{"Lambussie-Karni District", Coordinate{10.9167, -2.6667}},
	{"Nadowli District", Coordinate{10.3667, -2.6667}},

	{"Volta Region", Coordinate{6.8833, 0.3667}},
	{"Ho District", Coordinate{6.6008, 0.4713}},
	{"Ketu South District", Coordinate{6.1000, 1.1500}},
	{"South Tongu District", Coordinate{6.0000, 0.6167}},
	{"Akatsi South District", Coordinate{6.1167, 0.8000}},

	{"Oti Region", Coordinate{7.9000, 0.4000}},
	{"Western North Region", Coordinate{6.3000, -2.8000}},
	{"Savannah Region", Coordinate{9.0833, -1.8167}},
	{"North East Region", Coordinate{10.5167, -0.3667}},
}

// DefaultTable returns the built-in Ghana district and region table.
func DefaultTable() *Table {
	return NewTable(ghanaPlaces)
}
