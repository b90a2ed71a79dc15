package domain

type City struct {
	ID   int64  `json:"cityId"`
	Name string `json:"name"`
}
