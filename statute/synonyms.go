package statute

// synonymGroups maps a canonical legal term to the surface forms that stand
// in for it in everyday queries. All surface forms are lowercase. A surface
// form belongs to at most one group.
var synonymGroups = map[string][]string{
	"murder":     {"murder", "kill", "homicide", "death", "slay"},
	"theft":      {"theft", "steal", "stolen", "rob", "robbery", "snatch"},
	"cheating":   {"cheat", "fraud", "deceive", "dishonest"},
	"rape":       {"rape", "sexual assault", "sexual violence", "forcible sex"},
	"kidnapping": {"kidnap", "abduct", "abduction", "hostage", "ransom"},
	"hurt":       {"hurt", "injury", "harm", "grievous hurt", "serious injury"},
	"assault":    {"assault", "attack", "molest", "outrage modesty", "harassment"},
	"cruelty":    {"cruelty", "domestic violence", "abuse", "dowry harassment"},
	"dacoity":    {"dacoity", "gang robbery"},
}
