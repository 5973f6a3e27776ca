package model

// Section identifies one panel of the exchange page.
type Section string

const (
	SectionHome    Section = "home"
	SectionTrade   Section = "trade"
	SectionMarkets Section = "markets"
	SectionWallet  Section = "wallet"
	SectionAbout   Section = "about"
	SectionFAQ     Section = "faq"
	SectionSupport Section = "support"
	SectionContact Section = "contact"
)

// NavItem is an entry of the navigation bar.
type NavItem struct {
	ID    Section `json:"id"`
	Label string  `json:"label"`
	Icon  string  `json:"icon"`
}

// FAQEntry is one question of the FAQ accordion.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContactRequest is the payload of the contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
