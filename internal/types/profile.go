package types

import "github.com/go-playground/validator/v10"

// Profile is the structured knowledge about a target individual.
type Profile struct {
	Personal  Personal  `json:"personal" yaml:"personal"`
	Network   Network   `json:"network" yaml:"network"`
	Interests Interests `json:"interests" yaml:"interests"`
	Custom    Custom    `json:"custom" yaml:"custom"`
	Harvest   Harvest   `json:"harvest" yaml:"harvest"`
}

// Personal holds names, dates and contact details.
type Personal struct {
	FirstName     string   `json:"first_name,omitempty" yaml:"first_name"`
	LastName      string   `json:"last_name,omitempty" yaml:"last_name"`
	Nickname      string   `json:"nickname,omitempty" yaml:"nickname"`
	Birthdate     string   `json:"birthdate,omitempty" yaml:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	PartnerName   string   `json:"partner_name,omitempty" yaml:"partner_name"`
	PetName       string   `json:"pet_name,omitempty" yaml:"pet_name"`
	ChildrenNames []string `json:"children_names,omitempty" yaml:"children_names"`
	Phone         string   `json:"phone,omitempty" yaml:"phone"`
}

// Network holds identifiers of the target's network equipment.
type Network struct {
	SSID        string `json:"ssid,omitempty" yaml:"ssid"`
	RouterBrand string `json:"router_brand,omitempty" yaml:"router_brand"`
	ISP         string `json:"isp,omitempty" yaml:"isp"`
}

// Interests holds hobbies and favourites.
type Interests struct {
	FavoriteTeam   string   `json:"favorite_team,omitempty" yaml:"favorite_team"`
	FavoriteBand   string   `json:"favorite_band,omitempty" yaml:"favorite_band"`
	Hobbies        []string `json:"hobbies,omitempty" yaml:"hobbies"`
	FavoriteColor  string   `json:"favorite_color,omitempty" yaml:"favorite_color"`
	FavoriteNumber string   `json:"favorite_number,omitempty" yaml:"favorite_number" validate:"omitempty,number"`
}

// Custom holds free-form words and numbers supplied by the operator.
type Custom struct {
	Words   []string `json:"words,omitempty" yaml:"words"`
	Numbers []string `json:"numbers,omitempty" yaml:"numbers" validate:"dive,number"`
}

// Harvest lists pages whose text is mined for additional seed words.
type Harvest struct {
	URLs        []string `json:"urls,omitempty" yaml:"urls" validate:"dive,url"`
	UseBrowser  bool     `json:"use_browser,omitempty" yaml:"use_browser"`
	MaxWords    int      `json:"max_words,omitempty" yaml:"max_words" validate:"gte=0"`
	SpiderDepth int      `json:"spider_depth,omitempty" yaml:"spider_depth" validate:"gte=0,lte=3"`
}

// Validate checks the field formats that the seed extractor relies on.
func (p *Profile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
