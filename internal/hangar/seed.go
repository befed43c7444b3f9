package hangar

import "hangar-go/internal/model"

// SeedCatalog returns the default master catalog written on first use. A
// fresh copy is returned each call so callers can't mutate the seed.
func SeedCatalog() []model.ModelVariant {
	return []model.ModelVariant{
		// Mobile Suit Gundam
		{
			ModelNumber:  "RX-78-2",
			Name:         "RX-78-2 Gundam",
			Series:       "Mobile Suit Gundam",
			Grade:        "Master Grade",
			Scale:        "1/100",
			Manufacturer: "Bandai",
			ReleaseYear:  1995,
			Price:        40.00,
			Barcode:      "4573102616234",
			Description:  "The iconic original Gundam mobile suit.",
		},
		{
			ModelNumber:  "RX-78-2",
			Name:         "RX-78-2 Gundam",
			Series:       "Mobile Suit Gundam",
			Grade:        "Real Grade",
			Scale:        "1/144",
			Manufacturer: "Bandai",
			ReleaseYear:  2010,
			Price:        30.00,
			Barcode:      "4543112616234",
			Description:  "Real Grade version with enhanced detail.",
		},
		{
			ModelNumber:  "RX-78-2",
			Name:         "RX-78-2 Gundam",
			Series:       "Mobile Suit Gundam",
			Grade:        "Perfect Grade",
			Scale:        "1/60",
			Manufacturer: "Bandai",
			ReleaseYear:  1998,
			Price:        200.00,
			Barcode:      "4902425358901",
			Description:  "The ultimate RX-78-2 with full inner frame.",
		},
		{
			ModelNumber:  "MS-06S",
			Name:         "Zaku II Char Custom",
			Series:       "Mobile Suit Gundam",
			Grade:        "Master Grade",
			Scale:        "1/100",
			Manufacturer: "Bandai",
			ReleaseYear:  2001,
			Price:        45.00,
			Barcode:      "4902425389456",
			Description:  "Char Aznable's custom red Zaku.",
		},

		// Gundam Wing
		{
			ModelNumber:  "XXXG-01W",
			Name:         "Wing Gundam",
			Series:       "Gundam Wing",
			Grade:        "Master Grade",
			Scale:        "1/100",
			Manufacturer: "Bandai",
			ReleaseYear:  2004,
			Price:        45.00,
			Barcode:      "4902425445678",
			Description:  "Heero Yuy's primary mobile suit.",
		},
		{
			ModelNumber:  "XXXG-00W0",
			Name:         "Wing Gundam Zero Custom",
			Series:       "Gundam Wing",
			Grade:        "Master Grade",
			Scale:        "1/100",
			Manufacturer: "Bandai",
			ReleaseYear:  2004,
			Price:        50.00,
			Barcode:      "4902425556789",
			Description:  "The upgraded Wing Zero with angel wings.",
		},
		{
			ModelNumber:  "OZ-00MS",
			Name:         "Tallgeese",
			Series:       "Gundam Wing",
			Grade:        "Master Grade",
			Scale:        "1/100",
			Manufacturer: "Bandai",
			ReleaseYear:  2008,
			Price:        48.00,
			Barcode:      "4902425667890",
			Description:  "The first mobile suit, piloted by Zechs.",
		},

		// Gundam SEED
		{
			ModelNumber:  "GAT-X105",
			Name:         "Strike Gundam",
			Series:       "Gundam SEED",
			Grade:        "Master Grade",
			Scale:        "1/100",
			Manufacturer: "Bandai",
			ReleaseYear:  2004,
			Price:        40.00,
			Barcode:      "4902425778901",
			Description:  "Kira Yamato's versatile mobile suit.",
		},
		{
			ModelNumber:  "ZGMF-X10A",
			Name:         "Freedom Gundam",
			Series:       "Gundam SEED",
			Grade:        "Master Grade",
			Scale:        "1/100",
			Manufacturer: "Bandai",
			ReleaseYear:  2004,
			Price:        55.00,
			Barcode:      "4902425889012",
			Description:  "Nuclear-powered mobile suit with plasma cannons.",
		},
		{
			ModelNumber:  "ZGMF-X20A",
			Name:         "Strike Freedom Gundam",
			Series:       "Gundam SEED Destiny",
			Grade:        "Master Grade",
			Scale:        "1/100",
			Manufacturer: "Bandai",
			ReleaseYear:  2006,
			Price:        65.00,
			Barcode:      "4902425990123",
			Description:  "Ultimate freedom with DRAGOON system.",
		},

		// Gundam 00
		{
			ModelNumber:  "GN-001",
			Name:         "Gundam Exia",
			Series:       "Gundam 00",
			Grade:        "Master Grade",
			Scale:        "1/100",
			Manufacturer: "Bandai",
			ReleaseYear:  2008,
			Price:        45.00,
			Barcode:      "4902425101234",
			Description:  "Close-combat specialist piloted by Setsuna.",
		},
		{
			ModelNumber:  "GN-0000",
			Name:         "00 Gundam",
			Series:       "Gundam 00",
			Grade:        "Master Grade",
			Scale:        "1/100",
			Manufacturer: "Bandai",
			ReleaseYear:  2009,
			Price:        50.00,
			Barcode:      "4902425212345",
			Description:  "Twin Drive system mobile suit.",
		},
		{
			ModelNumber:  "GNT-0000",
			Name:         "00 Qan[T]",
			Series:       "Gundam 00",
			Grade:        "Master Grade",
			Scale:        "1/100",
			Manufacturer: "Bandai",
			ReleaseYear:  2011,
			Price:        55.00,
			Barcode:      "4902425323456",
			Description:  "Final evolution with quantum system.",
		},

		// Iron-Blooded Orphans
		{
			ModelNumber:  "ASW-G-08",
			Name:         "Gundam Barbatos",
			Series:       "Iron-Blooded Orphans",
			Grade:        "High Grade",
			Scale:        "1/144",
			Manufacturer: "Bandai",
			ReleaseYear:  2015,
			Price:        18.00,
			Barcode:      "4902425434567",
			Description:  "Mikazuki's Gundam frame mobile suit.",
		},
		{
			ModelNumber:  "ASW-G-08",
			Name:         "Gundam Barbatos Lupus Rex",
			Series:       "Iron-Blooded Orphans",
			Grade:        "High Grade",
			Scale:        "1/144",
			Manufacturer: "Bandai",
			ReleaseYear:  2017,
			Price:        22.00,
			Barcode:      "4902425545678",
			Description:  "Final form with massive mace.",
		},
		{
			ModelNumber:  "ASW-G-66",
			Name:         "Gundam Kimaris Vidar",
			Series:       "Iron-Blooded Orphans",
			Grade:        "High Grade",
			Scale:        "1/144",
			Manufacturer: "Bandai",
			ReleaseYear:  2017,
			Price:        20.00,
			Barcode:      "4902425656789",
			Description:  "Gaelio's lance-wielding Gundam.",
		},

		// Gundam Unicorn
		{
			ModelNumber:  "RX-0",
			Name:         "Unicorn Gundam",
			Series:       "Gundam Unicorn",
			Grade:        "Master Grade",
			Scale:        "1/100",
			Manufacturer: "Bandai",
			ReleaseYear:  2014,
			Price:        70.00,
			Barcode:      "4902425767890",
			Description:  "Transforming mobile suit with psycho-frame.",
		},
		{
			ModelNumber:  "RX-0",
			Name:         "Banshee",
			Series:       "Gundam Unicorn",
			Grade:        "Master Grade",
			Scale:        "1/100",
			Manufacturer: "Bandai",
			ReleaseYear:  2012,
			Price:        68.00,
			Barcode:      "4902425878901",
			Description:  "Black variant with Armed Armor.",
		},
		{
			ModelNumber:  "MSN-06S",
			Name:         "Sinanju",
			Series:       "Gundam Unicorn",
			Grade:        "Master Grade",
			Scale:        "1/100",
			Manufacturer: "Bandai",
			ReleaseYear:  2009,
			Price:        75.00,
			Barcode:      "4902425989012",
			Description:  "Red Comet successor piloted by Full Frontal.",
		},

		{
			ModelNumber:  "RX-78-2",
			Name:         "RX-78-2 Gundam",
			Series:       "Mobile Suit Gundam",
			Grade:        "Entry Grade",
			Scale:        "1/144",
			Manufacturer: "Bandai",
			ReleaseYear:  2020,
			Price:        10.00,
			Barcode:      "4902425090123",
			Description:  "Beginner-friendly snap-fit kit.",
		},
		{
			ModelNumber:  "NU GUNDAM",
			Name:         "Nu Gundam",
			Series:       "Char's Counterattack",
			Grade:        "Master Grade",
			Scale:        "1/100",
			Manufacturer: "Bandai",
			ReleaseYear:  2012,
			Price:        80.00,
			Barcode:      "4902425191234",
			Description:  "Amuro's final mobile suit with fin funnels.",
		},
	}
}
