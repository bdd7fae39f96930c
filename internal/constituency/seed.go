package constituency

import "github.com/praja-pulse/campaign-backend/internal/shared"

// SeedData is the static constituency table the tracker covers. Keywords
// carry both Latin and Telugu spellings so tagging works across scripts.
var SeedData = []Constituency{
	{Name: "Pulivendla", District: "YSR Kadapa", Region: "Rayalaseema",
		Keywords: shared.StringSlice{"pulivendla", "పులివెందుల"}},
	{Name: "Kuppam", District: "Chittoor", Region: "Rayalaseema",
		Keywords: shared.StringSlice{"kuppam", "కుప్పం"}},
	{Name: "Mangalagiri", District: "Guntur", Region: "Coastal Andhra",
		Keywords: shared.StringSlice{"mangalagiri", "మంగళగిరి"}},
	{Name: "Tadepalli", District: "Guntur", Region: "Coastal Andhra",
		Keywords: shared.StringSlice{"tadepalli", "తాడేపల్లి"}},
	{Name: "Visakhapatnam South", District: "Visakhapatnam", Region: "Uttarandhra",
		Keywords: shared.StringSlice{"visakhapatnam", "vizag", "విశాఖపట్నం"}},
	{Name: "Vijayawada Central", District: "NTR", Region: "Coastal Andhra",
		Keywords: shared.StringSlice{"vijayawada", "విజయవాడ"}},
	{Name: "Tirupati", District: "Tirupati", Region: "Rayalaseema",
		Keywords: shared.StringSlice{"tirupati", "తిరుపతి"}},
	{Name: "Kadapa", District: "YSR Kadapa", Region: "Rayalaseema",
		Keywords: shared.StringSlice{"kadapa", "కడప"}},
	{Name: "Anantapur Urban", District: "Anantapur", Region: "Rayalaseema",
		Keywords: shared.StringSlice{"anantapur", "అనంతపురం"}},
	{Name: "Kurnool", District: "Kurnool", Region: "Rayalaseema",
		Keywords: shared.StringSlice{"kurnool", "కర్నూలు"}},
	{Name: "Rajahmundry City", District: "East Godavari", Region: "Coastal Andhra",
		Keywords: shared.StringSlice{"rajahmundry", "రాజమండ్రి"}},
	{Name: "Kakinada City", District: "Kakinada", Region: "Coastal Andhra",
		Keywords: shared.StringSlice{"kakinada", "కాకినాడ"}},
	{Name: "Nellore City", District: "Nellore", Region: "Coastal Andhra",
		Keywords: shared.StringSlice{"nellore", "నెల్లూరు"}},
	{Name: "Srikakulam", District: "Srikakulam", Region: "Uttarandhra",
		Keywords: shared.StringSlice{"srikakulam", "శ్రీకాకుళం"}},
	{Name: "Eluru", District: "Eluru", Region: "Coastal Andhra",
		Keywords: shared.StringSlice{"eluru", "ఏలూరు"}},
}
