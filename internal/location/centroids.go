package location

import "court-api/internal/geo"

// 文档注释：内置城市质心表（美国主要城市）
// 背景：城市级反地理的内置数据，随二进制分发；覆盖主要都会区即可，
// 半径外的坐标按未命中处理，不强行归属。
var cityCentroids = []Centroid{
	{Point: geo.Point{Lat: 35.7796, Lng: -78.6382}, City: "Raleigh", Region: "North Carolina", Country: "United States"},
	{Point: geo.Point{Lat: 35.9940, Lng: -78.8986}, City: "Durham", Region: "North Carolina", Country: "United States"},
	{Point: geo.Point{Lat: 35.7915, Lng: -78.7811}, City: "Cary", Region: "North Carolina", Country: "United States"},
	{Point: geo.Point{Lat: 35.2271, Lng: -80.8431}, City: "Charlotte", Region: "North Carolina", Country: "United States"},
	{Point: geo.Point{Lat: 36.0726, Lng: -79.7920}, City: "Greensboro", Region: "North Carolina", Country: "United States"},
	{Point: geo.Point{Lat: 40.7128, Lng: -74.0060}, City: "New York", Region: "New York", Country: "United States"},
	{Point: geo.Point{Lat: 34.0522, Lng: -118.2437}, City: "Los Angeles", Region: "California", Country: "United States"},
	{Point: geo.Point{Lat: 41.8781, Lng: -87.6298}, City: "Chicago", Region: "Illinois", Country: "United States"},
	{Point: geo.Point{Lat: 29.7604, Lng: -95.3698}, City: "Houston", Region: "Texas", Country: "United States"},
	{Point: geo.Point{Lat: 33.4484, Lng: -112.0740}, City: "Phoenix", Region: "Arizona", Country: "United States"},
	{Point: geo.Point{Lat: 39.9526, Lng: -75.1652}, City: "Philadelphia", Region: "Pennsylvania", Country: "United States"},
	{Point: geo.Point{Lat: 29.4241, Lng: -98.4936}, City: "San Antonio", Region: "Texas", Country: "United States"},
	{Point: geo.Point{Lat: 32.7157, Lng: -117.1611}, City: "San Diego", Region: "California", Country: "United States"},
	{Point: geo.Point{Lat: 32.7767, Lng: -96.7970}, City: "Dallas", Region: "Texas", Country: "United States"},
	{Point: geo.Point{Lat: 30.2672, Lng: -97.7431}, City: "Austin", Region: "Texas", Country: "United States"},
	{Point: geo.Point{Lat: 37.7749, Lng: -122.4194}, City: "San Francisco", Region: "California", Country: "United States"},
	{Point: geo.Point{Lat: 47.6062, Lng: -122.3321}, City: "Seattle", Region: "Washington", Country: "United States"},
	{Point: geo.Point{Lat: 39.7392, Lng: -104.9903}, City: "Denver", Region: "Colorado", Country: "United States"},
	{Point: geo.Point{Lat: 38.9072, Lng: -77.0369}, City: "Washington", Region: "District of Columbia", Country: "United States"},
	{Point: geo.Point{Lat: 42.3601, Lng: -71.0589}, City: "Boston", Region: "Massachusetts", Country: "United States"},
	{Point: geo.Point{Lat: 36.1627, Lng: -86.7816}, City: "Nashville", Region: "Tennessee", Country: "United States"},
	{Point: geo.Point{Lat: 33.7490, Lng: -84.3880}, City: "Atlanta", Region: "Georgia", Country: "United States"},
	{Point: geo.Point{Lat: 25.7617, Lng: -80.1918}, City: "Miami", Region: "Florida", Country: "United States"},
	{Point: geo.Point{Lat: 28.5384, Lng: -81.3789}, City: "Orlando", Region: "Florida", Country: "United States"},
	{Point: geo.Point{Lat: 45.5152, Lng: -122.6784}, City: "Portland", Region: "Oregon", Country: "United States"},
	{Point: geo.Point{Lat: 44.9778, Lng: -93.2650}, City: "Minneapolis", Region: "Minnesota", Country: "United States"},
	{Point: geo.Point{Lat: 39.0997, Lng: -94.5786}, City: "Kansas City", Region: "Missouri", Country: "United States"},
	{Point: geo.Point{Lat: 36.1699, Lng: -115.1398}, City: "Las Vegas", Region: "Nevada", Country: "United States"},
	{Point: geo.Point{Lat: 40.4406, Lng: -79.9959}, City: "Pittsburgh", Region: "Pennsylvania", Country: "United States"},
	{Point: geo.Point{Lat: 35.1495, Lng: -90.0490}, City: "Memphis", Region: "Tennessee", Country: "United States"},
}
