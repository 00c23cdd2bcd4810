package domain

type RoutePrice struct {
	Route       string `json:"route"`
	VanPriceLKR int64  `json:"van_price_lkr"`
	CarPriceLKR int64  `json:"car_price_lkr"`
}
