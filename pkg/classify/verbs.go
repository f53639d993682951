package classify

// createVerbs install the entity described by the record.
var createVerbs = map[string]bool{
	"add":    true,
	"merge":  true,
	"create": true,
}

// BenignVerbs is the closed set of lifecycle and administrative actions that
// operate on an existing entity. Records using one of these depend on the
// entity they target. Matching is case-sensitive.
var BenignVerbs = map[string]bool{
	"ActivateActivity":      true,
	"AddItem":               true,
	"AddHistory":            true,
	"ApplyUpdate":           true,
	"BuildProcessReport":    true,
	"CancelWorkflow":        true,
	"checkImportedItemType": true,
	"closeWorkflow":         true,
	"copy":                  true,
	"copyAsIs":              true,
	"copyAsNew":             true,
	"delete":                true,
	"edit":                  true,
	"EmailItem":             true,
	"EvaluateActivity":      true,
	"exportItemType":        true,
	"get":                   true,
	"getItemAllVersions":    true,
	"getAffectedItems":      true,
	"getItemConfig":         true,
	"getItemLastVersion":    true,
	"getItemNextStates":     true,
	"getItemRelationships":  true,
	"GetItemRepeatConfig":   true,
	"getItemWhereUsed":      true,
	"GetMappedPath":         true,
	"getPermissions":        true,
	"getRelatedItem":        true,
	"GetUpdateInfo":         true,
	"instantiateWorkflow":   true,
	"lock":                  true,
	"New Workflow Map":      true,
	"PromoteItem":           true,
	"purge":                 true,
	"recache":               true,
	"replicate":             true,
	"resetAllItemsAccess":   true,
	"resetItemAccess":       true,
	"resetLifecycle":        true,
	"setDefaultLifecycle":   true,
	"skip":                  true,
	"startWorkflow":         true,
	"unlock":                true,
	"update":                true,
	"ValidateWorkflowMap":   true,
	"version":               true,
}

// definitionKinds have no prerequisite when deleted.
var definitionKinds = map[string]bool{
	"Form": true,
	"View": true,
}

// IsCreateVerb reports whether verb installs an entity.
func IsCreateVerb(verb string) bool {
	return createVerbs[verb]
}

// IsBenignVerb reports whether verb is in BenignVerbs.
func IsBenignVerb(verb string) bool {
	return BenignVerbs[verb]
}

func dependsOnTarget(verb, kind string) bool {
	return verb != "delete" || !definitionKinds[kind]
}
