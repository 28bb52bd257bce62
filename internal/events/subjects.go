package events

const (
	StreamName   = "LOTO_DRAWS"
	StreamMaxAge = "168h" // 7 days
)

func SubjectDrawCompleted(drawID string) string { return "loto.draw." + drawID + ".completed" }
