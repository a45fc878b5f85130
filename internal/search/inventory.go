package search

import "github.com/voelivre/voelivre-api/internal/domain"

// Inventory is the fixed fallback flight inventory served when no live
// source is available or eligible. Rows are matched by exact origin and
// destination code; ids get the requested departure date appended so repeated
// searches for different dates yield distinct identities.
var Inventory = []domain.Flight{
	{ID: "1", Airline: "LATAM Airlines", Logo: "https://logo.clearbit.com/latam.com", DepartureTime: "08:30", ArrivalTime: "21:45", Origin: "GRU", Destination: "LIS", Price: 2450.4, Stops: 0, Duration: "11h 15m", SeatsLeft: 4, Cabin: "Economy"},
	{ID: "2", Airline: "Azul Linhas Aéreas", Logo: "https://logo.clearbit.com/voeazul.com.br", DepartureTime: "10:15", ArrivalTime: "14:20", Origin: "VCP", Destination: "LIS", Price: 2120.99, Stops: 1, Duration: "13h 05m", SeatsLeft: 2, Cabin: "Economy"},
	{ID: "3", Airline: "TAP Air Portugal", Logo: "https://logo.clearbit.com/flytap.com", DepartureTime: "22:45", ArrivalTime: "10:00", Origin: "GRU", Destination: "LIS", Price: 3100.0, Stops: 0, Duration: "10h 15m", SeatsLeft: 12, Cabin: "Economy"},
	{ID: "4", Airline: "Emirates", Logo: "https://logo.clearbit.com/emirates.com", DepartureTime: "18:00", ArrivalTime: "12:00", Origin: "GRU", Destination: "DXB", Price: 4200.5, Stops: 0, Duration: "14h 35m", SeatsLeft: 8, Cabin: "Premium Economy"},
	{ID: "5", Airline: "GOL Linhas Aéreas", Logo: "https://logo.clearbit.com/voegol.com.br", DepartureTime: "06:10", ArrivalTime: "09:30", Origin: "GIG", Destination: "EZE", Price: 1200.0, Stops: 0, Duration: "3h 20m", SeatsLeft: 6, Cabin: "Economy"},
	{ID: "6", Airline: "Air France", Logo: "https://logo.clearbit.com/airfrance.com", DepartureTime: "17:15", ArrivalTime: "07:00", Origin: "GRU", Destination: "CDG", Price: 3800.0, Stops: 0, Duration: "11h 45m", SeatsLeft: 3, Cabin: "Premium Economy"},
	{ID: "7", Airline: "Iberia", Logo: "https://logo.clearbit.com/iberia.com", DepartureTime: "23:00", ArrivalTime: "11:20", Origin: "GRU", Destination: "MAD", Price: 2750.0, Stops: 0, Duration: "10h 20m", SeatsLeft: 5, Cabin: "Economy"},
	{ID: "8", Airline: "LATAM Airlines", Logo: "https://logo.clearbit.com/latam.com", DepartureTime: "09:40", ArrivalTime: "22:10", Origin: "GRU", Destination: "BCN", Price: 2890.0, Stops: 1, Duration: "14h 30m", SeatsLeft: 7, Cabin: "Economy"},
}
