package services

// The synthetic dataset shown when a child has no usage rows yet. Kept as an
// explicit, named strategy instead of being woven into the live-data path:
// the values are fixed, bucket sums equal the total and app percentages sum
// to ~100, so every consumer renders a coherent demo view. Bucket labels use
// the same scheme as the live reducer: hours for today, weekdays otherwise.

type placeholderShape struct {
	total   int
	apps    []AppUsage // Minutes filled in, Percentage derived
	buckets []UsageBucket
}

var placeholderShapes = map[string]placeholderShape{
	WindowToday: {
		total: 495,
		apps: []AppUsage{
			{Name: "Chrome", Minutes: 173},
			{Name: "YouTube", Minutes: 124},
			{Name: "Minecraft", Minutes: 99},
			{Name: "Educational Apps", Minutes: 74},
			{Name: "Other", Minutes: 25},
		},
		buckets: []UsageBucket{
			{Label: "8AM", Minutes: 10}, {Label: "9AM", Minutes: 15},
			{Label: "10AM", Minutes: 20}, {Label: "11AM", Minutes: 25},
			{Label: "12PM", Minutes: 30}, {Label: "1PM", Minutes: 35},
			{Label: "2PM", Minutes: 40}, {Label: "3PM", Minutes: 45},
			{Label: "4PM", Minutes: 50}, {Label: "5PM", Minutes: 55},
			{Label: "6PM", Minutes: 60}, {Label: "7PM", Minutes: 50},
			{Label: "8PM", Minutes: 40}, {Label: "9PM", Minutes: 20},
		},
	},
	WindowWeek: {
		total: 1140,
		apps: []AppUsage{
			{Name: "Chrome", Minutes: 399},
			{Name: "YouTube", Minutes: 285},
			{Name: "Minecraft", Minutes: 228},
			{Name: "Educational Apps", Minutes: 171},
			{Name: "Other", Minutes: 57},
		},
		buckets: []UsageBucket{
			{Label: "Mon", Minutes: 120}, {Label: "Tue", Minutes: 150},
			{Label: "Wed", Minutes: 180}, {Label: "Thu", Minutes: 140},
			{Label: "Fri", Minutes: 160}, {Label: "Sat", Minutes: 200},
			{Label: "Sun", Minutes: 190},
		},
	},
	WindowMonth: {
		total: 3400,
		apps: []AppUsage{
			{Name: "Chrome", Minutes: 1190},
			{Name: "YouTube", Minutes: 850},
			{Name: "Minecraft", Minutes: 680},
			{Name: "Educational Apps", Minutes: 510},
			{Name: "Other", Minutes: 170},
		},
		buckets: []UsageBucket{
			{Label: "Mon", Minutes: 450}, {Label: "Tue", Minutes: 470},
			{Label: "Wed", Minutes: 500}, {Label: "Thu", Minutes: 460},
			{Label: "Fri", Minutes: 480}, {Label: "Sat", Minutes: 540},
			{Label: "Sun", Minutes: 500},
		},
	},
}

func placeholderSummary(childID, window string) UsageSummary {
	shape, ok := placeholderShapes[window]
	if !ok {
		shape = placeholderShapes[WindowToday]
		window = WindowToday
	}

	apps := make([]AppUsage, len(shape.apps))
	copy(apps, shape.apps)
	for i := range apps {
		apps[i].Percentage = float64(apps[i].Minutes) / float64(shape.total) * 100
	}

	buckets := make([]UsageBucket, len(shape.buckets))
	copy(buckets, shape.buckets)

	return UsageSummary{
		ChildID:   childID,
		Window:    window,
		TimeUsed:  shape.total,
		TopApps:   apps,
		Buckets:   buckets,
		Synthetic: true,
	}
}
