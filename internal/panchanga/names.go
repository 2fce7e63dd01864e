package panchanga

// Paksha names. A lunar month runs bright fortnight first.
const (
	PakshaShukla  = "शुक्ल पक्ष"
	PakshaKrishna = "कृष्ण पक्ष"
)

// tithiNames holds the fourteen shared names plus the two fortnight
// endings: index 14 is Purnima (full moon) and 15 Amavasya (new moon).
var tithiNames = [16]string{
	"प्रतिपदा", "द्वितीया", "तृतीया", "चतुर्थी", "पञ्चमी", "षष्ठी",
	"सप्तमी", "अष्टमी", "नवमी", "दशमी", "एकादशी", "द्वादशी",
	"त्रयोदशी", "चतुर्दशी", "पूर्णिमा", "अमावस्या",
}

var nakshatraNames = [27]string{
	"अश्विनी", "भरणी", "कृत्तिका", "रोहिणी", "मृगशिरा", "आर्द्रा",
	"पुनर्वसु", "पुष्य", "अश्लेषा", "मघा", "पूर्व फाल्गुनी", "उत्तर फाल्गुनी",
	"हस्त", "चित्रा", "स्वाती", "विशाखा", "अनुराधा", "ज्येष्ठा",
	"मूल", "पूर्वाषाढा", "उत्तराषाढा", "श्रवण", "धनिष्ठा", "शतभिषा",
	"पूर्व भाद्रपद", "उत्तर भाद्रपद", "रेवती",
}

var yogaNames = [27]string{
	"विष्कम्भ", "प्रीति", "आयुष्मान्", "सौभाग्य", "शोभन", "अतिगण्ड",
	"सुकर्म", "धृति", "शूल", "गण्ड", "वृद्धि", "ध्रुव",
	"व्याघात", "हर्षण", "वज्र", "सिद्धि", "व्यतिपात", "वरीयान्",
	"परिघ", "शिव", "सिद्ध", "साध्य", "शुभ", "शुक्ल",
	"ब्रह्म", "इन्द्र", "वैधृति",
}

// karanaNames: index 0 (Kimstughna) opens the month, indices 1-7 repeat
// eight times through the middle, 8-10 close it.
var karanaNames = [11]string{
	"किंस्तुघ्न", "बव", "बालव", "कौलव", "तैतिल", "गर", "वणिज", "विष्टि",
	"शकुनि", "चतुष्पाद", "नाग",
}

var rashiNames = [12]string{
	"मेष", "वृषभ", "मिथुन", "कर्क", "सिंह", "कन्या",
	"तुला", "वृश्चिक", "धनु", "मकर", "कुम्भ", "मीन",
}

// tithiName maps a day-of-fortnight (1-15) and paksha to a tithi name.
// Day 15 differs by fortnight: Purnima ends the bright half, Amavasya
// the dark.
func tithiName(day int, paksha string) string {
	if day == 15 {
		if paksha == PakshaKrishna {
			return tithiNames[15]
		}
		return tithiNames[14]
	}
	return tithiNames[day-1]
}

// karanaName maps the half-tithi index (0-59) to a karana. The seven
// movable karanas cycle through indices 1-56; the four fixed ones pin
// the month's first and last three half-tithis.
func karanaName(idx int) string {
	switch {
	case idx <= 0:
		return karanaNames[0]
	case idx < 57:
		return karanaNames[(idx-1)%7+1]
	default:
		return karanaNames[idx-57+8]
	}
}
