package restaurant

// Restaurant is one entry of the restaurant list as returned by the remote API.
type Restaurant struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PictureID   string  `json:"pictureId"`
	City        string  `json:"city"`
	Rating      float64 `json:"rating"`
}

// Category is a cuisine tag attached to a restaurant detail.
type Category struct {
	Name string `json:"name"`
}

// MenuItem is a single food or drink on a restaurant's menu.
type MenuItem struct {
	Name string `json:"name"`
}

// Menus groups the foods and drinks a restaurant serves.
type Menus struct {
	Foods  []MenuItem `json:"foods"`
	Drinks []MenuItem `json:"drinks"`
}

// Review is a customer review shown on the detail page.
type Review struct {
	Name   string `json:"name"`
	Review string `json:"review"`
	Date   string `json:"date"`
}

// Detail is the full record served by the detail endpoint.
type Detail struct {
	Restaurant
	Address         string     `json:"address"`
	Categories      []Category `json:"categories"`
	Menus           Menus      `json:"menus"`
	CustomerReviews []Review   `json:"customerReviews"`
}

// Summary strips the detail-only fields, leaving the record that is stored
// as a favorite.
func (d Detail) Summary() Restaurant {
	return d.Restaurant
}

// listResponse is the JSON envelope of GET /list.
type listResponse struct {
	Error       bool          `json:"error"`
	Message     string        `json:"message"`
	Count       int           `json:"count"`
	Restaurants *[]Restaurant `json:"restaurants"`
}

// detailResponse is the JSON envelope of GET /detail/{id}.
type detailResponse struct {
	Error      bool    `json:"error"`
	Message    string  `json:"message"`
	Restaurant *Detail `json:"restaurant"`
}
