package entities

const DefaultLogoURL = "/logo.png"

type LegalIDs struct {
	ICE     string `json:"ice"`
	RC      string `json:"rc"`
	IF      string `json:"if"`
	Patente string `json:"patente"`
}

type Contact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type SMTPConfig struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	User   string `json:"user"`
	Secure bool   `json:"secure"`
}

// AppSettings is the company profile singleton.
type AppSettings struct {
	CompanyName string      `json:"companyName"`
	LegalIDs    LegalIDs    `json:"legalIds"`
	Contact     Contact     `json:"contact"`
	LogoURL     string      `json:"logoUrl,omitempty"`
	SMTP        *SMTPConfig `json:"smtp,omitempty"`
}

func DefaultSettings() AppSettings {
	return AppSettings{
		CompanyName: "Fun Design F&Z",
		LogoURL:     DefaultLogoURL,
	}
}
