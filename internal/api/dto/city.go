package dto

type CityResponse struct {
	Name   string   `json:"name"`
	Places []string `json:"places"`
}

type ListCitiesResponse struct {
	Cities []CityResponse `json:"cities"`
}
