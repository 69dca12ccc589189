package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula
const earthRadiusKm = 6371.0

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// DistanceKm returns the great-circle distance in kilometers between two coordinates
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180.0
	phi2 := lat2 * math.Pi / 180.0
	dPhi := (lat2 - lat1) * math.Pi / 180.0
	dLambda := (lng2 - lng1) * math.Pi / 180.0

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) + math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	// guard against a > 1 from floating point error on antipodal points
	a = math.Min(1, a)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	return DistanceKm(point1.Latitude, point1.Longitude, point2.Latitude, point2.Longitude)
}

// ValidCoordinate reports whether lat/lng is a finite coordinate on the globe
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// EncodeGeohash converts a coordinate to a geohash string of the given precision
func EncodeGeohash(lat, lng float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lng, precision)
}
