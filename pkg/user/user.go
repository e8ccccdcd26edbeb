package user

type User struct {
	Id          int
	Uid         string
	Username    string
	DisplayName string
	Settings    Settings
}

// Settings carries per-user presentation preferences. Language is an opaque
// locale tag ("en", "ar", "de", ...); reports use it to pick the first day of
// the week.
type Settings struct {
	Language string
	Timezone string
}
