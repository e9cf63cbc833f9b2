package models

type GalleryItem struct {
	ID          string `gorm:"primaryKey;type:VARCHAR(64)" json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type Testimonial struct {
	ID      string `gorm:"primaryKey;type:VARCHAR(64)" json:"id"`
	Name    string `json:"name"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

// AboutContent is a singleton row (id = 1) edited from the admin dashboard.
type AboutContent struct {
	ID                 uint   `gorm:"primaryKey" json:"-"`
	Title              string `json:"title"`
	Subtitle           string `json:"subtitle"`
	HeroImage          string `json:"heroImage"`
	Stat1Value         string `json:"stat1Value"`
	Stat1Label         string `json:"stat1Label"`
	Stat2Value         string `json:"stat2Value"`
	Stat2Label         string `json:"stat2Label"`
	Stat3Value         string `json:"stat3Value"`
	Stat3Label         string `json:"stat3Label"`
	StoryTitle         string `json:"storyTitle"`
	StoryText          string `json:"storyText"`
	StoryImage         string `json:"storyImage"`
	CraftsmanshipTitle string `json:"craftsmanshipTitle"`
	CraftsmanshipText  string `json:"craftsmanshipText"`
	CraftsmanshipVideo string `json:"craftsmanshipVideo"`
	PhilosophyTitle    string `json:"philosophyTitle"`
	PhilosophySubtitle string `json:"philosophySubtitle"`
	Value1Title        string `json:"value1Title"`
	Value1Desc         string `json:"value1Desc"`
	Value2Title        string `json:"value2Title"`
	Value2Desc         string `json:"value2Desc"`
	Value3Title        string `json:"value3Title"`
	Value3Desc         string `json:"value3Desc"`
	ProcessTitle       string `json:"processTitle"`
	Step1Title         string `json:"processStep1Title"`
	Step1Desc          string `json:"processStep1Desc"`
	Step1Image         string `json:"processStep1Image"`
	Step2Title         string `json:"processStep2Title"`
	Step2Desc          string `json:"processStep2Desc"`
	Step2Image         string `json:"processStep2Image"`
	Step3Title         string `json:"processStep3Title"`
	Step3Desc          string `json:"processStep3Desc"`
	Step3Image         string `json:"processStep3Image"`
}

// HomeContent is a singleton row (id = 1).
type HomeContent struct {
	ID                   uint   `gorm:"primaryKey" json:"-"`
	HeroTitle            string `json:"heroTitle"`
	HeroSubtitle         string `json:"heroSubtitle"`
	HeroImage            string `json:"heroImage"`
	HomeVideoURL         string `json:"homeVideoUrl"`
	MarqueeText          string `json:"marqueeText"`
	TrendsTitle          string `json:"trendsSectionTitle"`
	TrendsSubtitle       string `json:"trendsSectionSubtitle"`
	Trend1Title          string `json:"trend1Title"`
	Trend1Image          string `json:"trend1Image"`
	Trend2Title          string `json:"trend2Title"`
	Trend2Image          string `json:"trend2Image"`
	VideoSectionTitle    string `json:"videoSectionTitle"`
	VideoSectionSubtitle string `json:"videoSectionSubtitle"`
	FeaturedTitle        string `json:"featuredSectionTitle"`
	FeaturedSubtitle     string `json:"featuredSectionSubtitle"`
	EditorialTitle       string `json:"editorialTitle"`
	EditorialText        string `json:"editorialText"`
	EditorialImage       string `json:"editorialImage"`
	EditorialVideo       string `json:"editorialVideo"`
}

// SiteSettings is a singleton row (id = 1).
type SiteSettings struct {
	ID               uint   `gorm:"primaryKey" json:"-"`
	BrandName        string `json:"brandName"`
	BrandSubtitle    string `json:"brandSubtitle"`
	LogoURL          string `json:"logoUrl"`
	FooterAboutTitle string `json:"footerAboutTitle"`
	FooterAboutText  string `json:"footerAboutText"`
	ContactEmail     string `json:"contactEmail"`
	SocialInstagram  string `json:"socialInstagram"`
	SocialFacebook   string `json:"socialFacebook"`
	SocialPinterest  string `json:"socialPinterest"`
	InvoiceAddress   string `json:"invoiceAddress"`
	InvoicePrefix    string `json:"invoicePrefix"`
	OrderPrefix      string `json:"orderPrefix"`
	LogoHeight       string `json:"logoHeight"`
	LogoWidth        string `json:"logoWidth"`
}
