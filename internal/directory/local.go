package directory

import "github.com/voelivre/voelivre-api/internal/domain"

// LocalAirports is the built-in directory used when the remote dataset is
// unavailable. It covers the routes the storefront promotes plus a handful of
// well-known international hubs.
var LocalAirports = []domain.Airport{
	{Code: "GRU", City: "São Paulo", Name: "Guarulhos Intl", Country: "Brasil", Region: "South America"},
	{Code: "GIG", City: "Rio de Janeiro", Name: "Galeão Intl", Country: "Brasil", Region: "South America"},
	{Code: "BSB", City: "Brasília", Name: "Pres. Juscelino Kubitschek", Country: "Brasil", Region: "South America"},
	{Code: "VCP", City: "Campinas", Name: "Viracopos Intl", Country: "Brasil", Region: "South America"},
	{Code: "LIS", City: "Lisboa", Name: "Humberto Delgado", Country: "Portugal", Region: "Europe"},
	{Code: "OPO", City: "Porto", Name: "Francisco Sá Carneiro", Country: "Portugal", Region: "Europe"},
	{Code: "MAD", City: "Madrid", Name: "Barajas", Country: "Espanha", Region: "Europe"},
	{Code: "BCN", City: "Barcelona", Name: "El Prat", Country: "Espanha", Region: "Europe"},
	{Code: "JFK", City: "Nova York", Name: "John F. Kennedy", Country: "EUA", Region: "North America"},
	{Code: "MIA", City: "Miami", Name: "Miami Intl", Country: "EUA", Region: "North America"},
	{Code: "ORL", City: "Orlando", Name: "Orlando Intl", Country: "EUA", Region: "North America"},
	{Code: "CDG", City: "Paris", Name: "Charles de Gaulle", Country: "França", Region: "Europe"},
	{Code: "LHR", City: "Londres", Name: "Heathrow", Country: "Reino Unido", Region: "Europe"},
	{Code: "DXB", City: "Dubai", Name: "Dubai Intl", Country: "EAU", Region: "Middle East"},
	{Code: "HND", City: "Tóquio", Name: "Haneda Airport", Country: "Japão", Region: "Asia"},
	{Code: "SYD", City: "Sydney", Name: "Kingsford Smith", Country: "Austrália", Region: "Oceania"},
	{Code: "EZE", City: "Buenos Aires", Name: "Ministro Pistarini", Country: "Argentina", Region: "South America"},
	{Code: "SCL", City: "Santiago", Name: "Arturo Merino Benítez", Country: "Chile", Region: "South America"},
}
