package testhelper

// PublicKeyBase64 is the base64 DER of the P-256 key that signed the payload
// fixtures, without PEM armor.
const PublicKeyBase64 = "MFkwEwYHKoZIzj0CAQYIKoZIzj0DAQcDQgAEqY8NfM1igIiTvsTUNuedGDSh1uAB1w8cTNzNnZ4v4in3JAUU6N3AypjQx0QMnMSShJoPvac/w5L02grgf4TCPA=="

// PublicKeyPEM is PublicKeyBase64 with its armor on a single line, the way
// it is usually published.
const PublicKeyPEM = "-----BEGIN PUBLIC KEY-----" + PublicKeyBase64 + "-----END PUBLIC KEY-----"

const (
	// SanitaryMessage is a sanitary certificate header and body.
	SanitaryMessage = "DC04FR00000113371337B201FR" +
		"F0CORRINE\x1dF1BERTHIER\x1dF206121965F3FF4000\x1dF5XF6200620131200"

	// SanitarySignature signs SanitaryMessage.
	SanitarySignature = "WZR5Y3AIRAFBIMKWLHSYX4BXNMELEVA3AXVL5IKZDX444F3A44VWXY2FKEWS4JUEOWLTSZ2MSMVW3NZ3LWO5FZKNLKVOMQT37LHV4II"

	// SanitaryPayload is a valid sanitary certificate.
	SanitaryPayload = SanitaryMessage + "\x1f" + SanitarySignature

	// TamperedSanitaryPayload changes the F1 field of SanitaryPayload and
	// keeps its signature.
	TamperedSanitaryPayload = "DC04FR00000113371337B201FR" +
		"F0CORRINE\x1dF1DUPOND\x1dF206121965F3FF4000\x1dF5XF6200620131200" +
		"\x1f" + SanitarySignature
)

const (
	// VaccinationMessage is a vaccination certificate header and body.
	VaccinationMessage = "DC04FR0000011E6D1E6DL101FR" +
		"L0THEOULE SUR MER\x1dL1JEAN PAUL\x1dL231051962L3COVID-19\x1dL4J07BX03\x1d" +
		"L5COMIRNATY PFIZER/BIONTECH\x1dL6COMIRNATY PFIZER/BIONTECH\x1dL71L82L901032021LACO"

	// VaccinationSignature signs VaccinationMessage.
	VaccinationSignature = "32T2SI2RUMPDLBHAFSBDF2CUE7GI4NR5WC3NSBEU6AZ7QZJZCPMCTXTVIDZAKEYO7237SQ2ZPOCMZKG7U3Q2LIMPPVJMA7TQAAKC5DY"

	// VaccinationPayload is a valid vaccination certificate.
	VaccinationPayload = VaccinationMessage + "\x1f" + VaccinationSignature

	// TamperedVaccinationPayload changes the L1 field of VaccinationPayload
	// and keeps its signature.
	TamperedVaccinationPayload = "DC04FR0000011E6D1E6DL101FR" +
		"L0THEOULE SUR MER\x1dL1PAUL\x1dL231051962L3COVID-19\x1dL4J07BX03\x1d" +
		"L5COMIRNATY PFIZER/BIONTECH\x1dL6COMIRNATY PFIZER/BIONTECH\x1dL71L82L901032021LACO" +
		"\x1f" + VaccinationSignature
)
