package domain

type Location struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Active    bool   `json:"active"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}
