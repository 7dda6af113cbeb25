package catalog

import "trip-planner-service/internal/ports"

// Defaults returns the built-in Jharkhand tourism catalog, used when no
// place repository is configured.
func Defaults() []ports.PlaceRecord {
	return []ports.PlaceRecord{
		{City: "Ranchi", Name: "Hundru Falls", BestTime: "July – September (monsoon for waterfall view)"},
		{City: "Ranchi", Name: "Dassam Falls", BestTime: "July – September"},
		{City: "Ranchi", Name: "Ranchi Lake and Rock Garden", BestTime: "October – February"},
		{City: "Ranchi", Name: "Tagore Hill", BestTime: "October – March"},
		{City: "Jamshedpur", Name: "Jubilee Park", BestTime: "October – March (pleasant weather)"},
		{City: "Jamshedpur", Name: "Tata Steel Zoological Park", BestTime: "November – February"},
		{City: "Jamshedpur", Name: "HUDCO Lake", BestTime: "October – February"},
		{City: "Deoghar", Name: "Satsang Ashram", BestTime: "October – March"},
		{City: "Deoghar", Name: "Harila Jori", BestTime: "October – March"},
		{City: "Deoghar", Name: "Trikut Parvat", BestTime: "October – March"},
		{City: "Deoghar", Name: "Shree Baba Baidyanath Jyotirlinga Mandir Deoghar", BestTime: "July (Shravani Mela) or October – March"},
		{City: "Dhanbad", Name: "Birsa Munda Park", BestTime: "October – February"},
		{City: "Dhanbad", Name: "Topchanchi Lake", BestTime: "October – March"},
		{City: "Dhanbad", Name: "Panchet Dam", BestTime: "November – February"},
		{City: "Dhanbad", Name: "Indian Institute of Technology(IIT)Dhanbad - ISM", BestTime: "October – February"},
	}
}
