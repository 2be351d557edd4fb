package directory

import (
	"sort"
	"strings"

	"chitoro-backend/hours"
	"chitoro-backend/models"
	"chitoro-backend/utils"
)

// Filter wildcards. A zero-value Filters matches everything.
const (
	AllCities = "All Cities"
	All       = "All"
)

// Filters is the directory filter state. Empty fields behave like
// their wildcard values.
type Filters struct {
	City   string
	Area   string
	Type   string
	Search string
}

// WithCity returns the filters with the city changed and the area
// reset to the wildcard: an area only means something within one city.
func (f Filters) WithCity(city string) Filters {
	f.City = city
	f.Area = All
	return f
}

// LatLng is a user location used for distance annotation.
type LatLng struct {
	Lat float64
	Lng float64
}

// DisplayRow is one branch flattened together with its parent
// business's identity. Rows are ephemeral read projections, recomputed
// on every call and never persisted.
type DisplayRow struct {
	BranchID     int64               `json:"id"`
	BusinessID   uint                `json:"business_id"`
	BusinessName string              `json:"business_name"`
	BusinessType models.BusinessType `json:"business_type"`
	Address      string              `json:"address"`
	City         string              `json:"city"`
	Area         string              `json:"area"`
	Latitude     float64             `json:"latitude"`
	Longitude    float64             `json:"longitude"`
	Schedule     hours.Schedule      `json:"schedule"`
	Distance     *float64            `json:"distance,omitempty"`
	Status       hours.Status        `json:"status,omitempty"`
}

// Project flattens the business list into display rows under the given
// filters. A business survives when its type matches and the search
// text is a case-insensitive substring of its name; a branch survives
// when its city and area match. With a user location every row gets a
// haversine distance in km and the result is stable-sorted nearest
// first, rows without a computable distance last. Pure and
// side-effect-free.
func Project(businesses []models.Business, f Filters, userLocation *LatLng) []DisplayRow {
	var rows []DisplayRow
	search := strings.ToLower(f.Search)

	for _, business := range businesses {
		if f.Type != "" && f.Type != All && f.Type != string(business.Type) {
			continue
		}
		if !strings.Contains(strings.ToLower(business.Name), search) {
			continue
		}

		for _, branch := range business.Branches {
			if f.City != "" && f.City != AllCities && f.City != branch.City {
				continue
			}
			if f.Area != "" && f.Area != All && f.Area != branch.Area {
				continue
			}

			row := DisplayRow{
				BranchID:     branch.ID,
				BusinessID:   business.ID,
				BusinessName: business.Name,
				BusinessType: business.Type,
				Address:      branch.Address,
				City:         branch.City,
				Area:         branch.Area,
				Latitude:     branch.Latitude,
				Longitude:    branch.Longitude,
				Schedule:     branch.Schedule(),
			}
			if userLocation != nil {
				d := utils.Haversine(userLocation.Lat, userLocation.Lng, branch.Latitude, branch.Longitude)
				row.Distance = &d
			}
			rows = append(rows, row)
		}
	}

	if userLocation != nil {
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].Distance == nil {
				return false
			}
			if rows[j].Distance == nil {
				return true
			}
			return *rows[i].Distance < *rows[j].Distance
		})
	}

	return rows
}
