// Package content holds the fixed storyboard material: scenes, stakeholder
// insights, problem statements, solution ideas and venue facts. Nothing here
// changes at runtime; accessors hand out copies.
package content

const (
	Title         = "German Hanger Crowd Management"
	Subtitle      = "Design Thinking Storyboard | Bennett University Cultural Fest"
	VenueMapTitle = "German Hanger Venue Layout - Detailed Map"
	VenueMapAsset = "venue-map.png"
)

var badges = []string{"24x7 Event", "Max 5,000"}

// Badges are the pills shown beside the header title.
func Badges() []string { return append([]string(nil), badges...) }
