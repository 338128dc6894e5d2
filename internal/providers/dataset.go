package providers

import "court-api/internal/courts"

// 文档注释：内置精选场地数据集（Raleigh–Durham–Cary 一带）
// 背景：随二进制内置，不依赖外部存储与网络；覆盖全部运动枚举与三态字段的各取值，
// 供线上兜底与测试复用。id 仅在 static 提供方范围内稳定。
var defaultDataset = []courts.CourtRecord{
	{
		ID:             "static-001",
		Name:           "Millbrook Exchange Tennis Center",
		Sport:          courts.SportTennis,
		Address:        "1905 Spring Forest Rd, Raleigh, NC 27615",
		Position:       courts.KnownPosition(35.8487, -78.6113),
		Rating:         4.7,
		RatingCount:    212,
		PriceKnown:     true,
		PricePerHour:   10,
		Amenities:      []string{"lights", "pro shop", "restrooms", "lessons"},
		Surface:        courts.KnownSurface("hard"),
		Indoor:         courts.KnownIndoor(false),
		Available:      true,
		ImageURL:       "https://static.court-api.local/img/millbrook.jpg",
		Phone:          "+1-919-996-4129",
		Website:        "https://raleighnc.gov/parks/millbrook-exchange-tennis",
		Description:    "23 lighted public tennis courts with year-round programs",
		SourceProvider: courts.SourceStatic,
		SourceTags:     []string{"public", "city-park"},
	},
	{
		ID:             "static-002",
		Name:           "Pullen Park Tennis Courts",
		Sport:          courts.SportTennis,
		Address:        "520 Ashe Ave, Raleigh, NC 27606",
		Position:       courts.KnownPosition(35.7806, -78.6636),
		Rating:         4.5,
		RatingCount:    96,
		Amenities:      []string{"lights", "water fountain"},
		Surface:        courts.KnownSurface("hard"),
		Indoor:         courts.KnownIndoor(false),
		Available:      true,
		ImageURL:       "https://static.court-api.local/img/pullen.jpg",
		Description:    "Six public courts beside the amusement park",
		SourceProvider: courts.SourceStatic,
		SourceTags:     []string{"public", "city-park"},
	},
	{
		ID:             "static-003",
		Name:           "Cary Tennis Park",
		Sport:          courts.SportTennis,
		Address:        "2727 NW Cary Pkwy, Cary, NC 27513",
		Position:       courts.KnownPosition(35.8085, -78.7957),
		Rating:         4.8,
		RatingCount:    340,
		PriceKnown:     true,
		PricePerHour:   14,
		Amenities:      []string{"lights", "clubhouse", "ball machine", "lessons"},
		Surface:        courts.KnownSurface("hard"),
		Indoor:         courts.KnownIndoor(false),
		Available:      true,
		ImageURL:       "https://static.court-api.local/img/carytennis.jpg",
		Phone:          "+1-919-462-2061",
		Website:        "https://www.carytennis.com",
		Description:    "30-court municipal tennis facility hosting USTA events",
		SourceProvider: courts.SourceStatic,
		SourceTags:     []string{"public", "tournament"},
	},
	{
		ID:             "static-004",
		Name:           "Whitted Park Tennis Courts",
		Sport:          courts.SportTennis,
		Address:        "625 S Duke St, Durham, NC 27701",
		Position:       courts.KnownPosition(35.9886, -78.9072),
		Rating:         4.2,
		RatingCount:    41,
		Surface:        courts.KnownSurface("hard"),
		Indoor:         courts.KnownIndoor(false),
		Available:      true,
		Description:    "Neighborhood courts in downtown Durham",
		SourceProvider: courts.SourceStatic,
		SourceTags:     []string{"public"},
	},
	{
		ID:             "static-005",
		Name:           "Riverside Park Courts",
		Sport:          courts.SportTennis,
		Address:        "200 Riverside Dr, Raleigh, NC 27610",
		Position:       courts.KnownPosition(35.7741, -78.6205),
		Rating:         4.0,
		RatingCount:    28,
		Amenities:      []string{"lights"},
		Surface:        courts.KnownSurface("clay"),
		Indoor:         courts.KnownIndoor(false),
		Available:      true,
		Description:    "Two clay courts along the greenway",
		SourceProvider: courts.SourceStatic,
		SourceTags:     []string{"public"},
	},
	{
		ID:             "static-006",
		Name:           "Halifax Community Center Gym",
		Sport:          courts.SportBasketball,
		Address:        "1023 Halifax St, Raleigh, NC 27604",
		Position:       courts.KnownPosition(35.7913, -78.6338),
		Rating:         4.3,
		RatingCount:    57,
		Amenities:      []string{"indoor court", "restrooms", "parking"},
		Surface:        courts.KnownSurface("wood"),
		Indoor:         courts.KnownIndoor(true),
		Available:      true,
		Description:    "Full indoor basketball court with open-gym hours",
		SourceProvider: courts.SourceStatic,
		SourceTags:     []string{"public", "community-center"},
	},
	{
		ID:             "static-007",
		Name:           "John Chavis Memorial Park Courts",
		Sport:          courts.SportBasketball,
		Address:        "505 Martin Luther King Jr Blvd, Raleigh, NC 27601",
		Position:       courts.KnownPosition(35.7749, -78.6313),
		Rating:         4.4,
		RatingCount:    88,
		Amenities:      []string{"lights", "double rim"},
		Surface:        courts.KnownSurface("concrete"),
		Indoor:         courts.KnownIndoor(false),
		Available:      true,
		Description:    "Outdoor full court near downtown",
		SourceProvider: courts.SourceStatic,
		SourceTags:     []string{"public", "city-park"},
	},
	{
		// 坐标未知样例：仅名称/地址可用，参与按名去重与展示，不参与距离排序
		ID:             "static-008",
		Name:           "Southeast Raleigh Hoops Annex",
		Sport:          courts.SportBasketball,
		Address:        "Rock Quarry Rd, Raleigh, NC",
		Rating:         3.9,
		RatingCount:    12,
		Surface:        courts.Surface{State: courts.Unknown},
		Indoor:         courts.Indoor{State: courts.Unknown},
		Available:      true,
		Description:    "Half-court pad behind the annex building",
		SourceProvider: courts.SourceStatic,
		SourceTags:     []string{"public"},
	},
	{
		ID:             "static-009",
		Name:           "Law Park Pickleball Courts",
		Sport:          courts.SportPickleball,
		Address:        "400 S East St, Raleigh, NC 27601",
		Position:       courts.KnownPosition(35.7722, -78.6351),
		Rating:         4.6,
		RatingCount:    73,
		PriceKnown:     true,
		PricePerHour:   5,
		Amenities:      []string{"lights", "nets provided"},
		Surface:        courts.KnownSurface("hard"),
		Indoor:         courts.KnownIndoor(false),
		Available:      true,
		Description:    "Six dedicated pickleball courts, busy on weekends",
		SourceProvider: courts.SourceStatic,
		SourceTags:     []string{"public", "dedicated"},
	},
	{
		ID:             "static-010",
		Name:           "Apex Nature Park Pickleball Complex",
		Sport:          courts.SportPickleball,
		Address:        "2600 Evans Rd, Apex, NC 27502",
		Position:       courts.KnownPosition(35.7088, -78.8762),
		Rating:         4.7,
		RatingCount:    129,
		Surface:        courts.KnownSurface("hard"),
		Indoor:         courts.KnownIndoor(false),
		Available:      true,
		Description:    "Twelve courts with tournament layout",
		SourceProvider: courts.SourceStatic,
		SourceTags:     []string{"public"},
	},
	{
		ID:             "static-011",
		Name:           "Lake Johnson Sand Volleyball Courts",
		Sport:          courts.SportVolleyball,
		Address:        "4601 Avent Ferry Rd, Raleigh, NC 27606",
		Position:       courts.KnownPosition(35.7648, -78.7153),
		Rating:         4.1,
		RatingCount:    35,
		Surface:        courts.KnownSurface("sand"),
		Indoor:         courts.KnownIndoor(false),
		Available:      true,
		Description:    "Two sand courts by the boathouse, first come first served",
		SourceProvider: courts.SourceStatic,
		SourceTags:     []string{"public", "sand"},
	},
	{
		ID:             "static-012",
		Name:           "Triangle Volleyball Club",
		Sport:          courts.SportVolleyball,
		Address:        "2422 US-70, Morrisville, NC 27560",
		Position:       courts.KnownPosition(35.8254, -78.8300),
		Rating:         4.8,
		RatingCount:    164,
		PriceKnown:     true,
		PricePerHour:   30,
		Amenities:      []string{"indoor courts", "pro coaching", "parking"},
		Surface:        courts.KnownSurface("sport court"),
		Indoor:         courts.KnownIndoor(true),
		Available:      true,
		Phone:          "+1-919-459-2999",
		Website:        "https://www.trianglevolleyball.org",
		Description:    "Eight indoor courts, club and open play",
		SourceProvider: courts.SourceStatic,
		SourceTags:     []string{"club", "indoor"},
	},
	{
		ID:             "static-013",
		Name:           "Marsh Creek Multi-Sport Complex",
		Sport:          courts.SportMulti,
		Address:        "3050 N New Hope Rd, Raleigh, NC 27604",
		Position:       courts.KnownPosition(35.8219, -78.5699),
		Rating:         4.2,
		RatingCount:    66,
		Amenities:      []string{"tennis", "basketball", "volleyball", "restrooms"},
		// 综合型场馆的整体“场面”无单一取值，标记为不适用
		Surface:        courts.Surface{State: courts.NotApplicable},
		Indoor:         courts.KnownIndoor(false),
		Available:      true,
		Description:    "Mixed outdoor courts: tennis, basketball and volleyball",
		SourceProvider: courts.SourceStatic,
		SourceTags:     []string{"public", "multi"},
	},
	{
		ID:             "static-014",
		Name:           "Optimist Community Center Courts",
		Sport:          courts.SportMulti,
		Address:        "5900 Whittier Dr, Raleigh, NC 27609",
		Position:       courts.KnownPosition(35.8541, -78.6337),
		Rating:         4.0,
		RatingCount:    22,
		Surface:        courts.Surface{State: courts.Unknown},
		Indoor:         courts.KnownIndoor(true),
		Available:      false,
		Description:    "Gym under renovation; outdoor pads open",
		SourceProvider: courts.SourceStatic,
		SourceTags:     []string{"public", "community-center"},
	},
	{
		ID:             "static-015",
		Name:           "Hillsborough Street Tennis Club",
		Sport:          courts.SportTennis,
		Address:        "2526 Hillsborough St, Raleigh, NC 27607",
		Position:       courts.KnownPosition(35.7877, -78.6700),
		Rating:         4.6,
		RatingCount:    58,
		PriceKnown:     true,
		PricePerHour:   22,
		Amenities:      []string{"indoor courts", "locker rooms", "stringing"},
		Surface:        courts.KnownSurface("hard"),
		Indoor:         courts.KnownIndoor(true),
		Available:      true,
		Description:    "Members-first indoor club with hourly guest courts",
		SourceProvider: courts.SourceStatic,
		SourceTags:     []string{"club", "indoor"},
	},
}

// DefaultDataset：导出内置数据集的只读视图（维护工具与测试使用）
func DefaultDataset() []courts.CourtRecord {
	out := make([]courts.CourtRecord, len(defaultDataset))
	copy(out, defaultDataset)
	return out
}
