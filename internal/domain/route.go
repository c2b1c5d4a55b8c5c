package domain

import "strings"

// Verb is the first token of a route string
type Verb string

const (
	VerbUnknown Verb = ""

	VerbStart          Verb = "start"
	VerbViewSchedules  Verb = "view_schedules"
	VerbSchedule       Verb = "schedule"
	VerbViewGroups     Verb = "view_groups"
	VerbGroup          Verb = "group"
	VerbSettings       Verb = "settings"
	VerbSettingsSwitch Verb = "settings_switch"

	VerbAdmin               Verb = "admin"
	VerbManageSchedule      Verb = "manage_schedule"
	VerbUploadSchedule      Verb = "upload_schedule"
	VerbDeleteSchedule      Verb = "delete_schedule"
	VerbViewSubstitutions   Verb = "view_substitutions"
	VerbManageSubstitutions Verb = "manage_substitutions"
	VerbUploadSubstitutions Verb = "upload_substitutions"
	VerbDeleteSubstitutions Verb = "delete_substitutions"
	VerbExportLogs          Verb = "export_logs"

	VerbAnswerCallback Verb = "answer_callback"
)

var knownVerbs = map[Verb]struct{}{
	VerbStart:               {},
	VerbViewSchedules:       {},
	VerbSchedule:            {},
	VerbViewGroups:          {},
	VerbGroup:               {},
	VerbSettings:            {},
	VerbSettingsSwitch:      {},
	VerbAdmin:               {},
	VerbManageSchedule:      {},
	VerbUploadSchedule:      {},
	VerbDeleteSchedule:      {},
	VerbViewSubstitutions:   {},
	VerbManageSubstitutions: {},
	VerbUploadSubstitutions: {},
	VerbDeleteSubstitutions: {},
	VerbExportLogs:          {},
	VerbAnswerCallback:      {},
}

// Route is the parsed form of an inbound navigation event:
// a verb plus zero or more positional arguments.
type Route struct {
	Verb Verb
	Args []string
}

// ParseRoute splits a route string into verb and arguments.
// A route whose first token is not a known verb parses to VerbUnknown.
func ParseRoute(data string) Route {
	fields := strings.Fields(data)
	if len(fields) == 0 {
		return Route{Verb: VerbUnknown}
	}

	verb := Verb(fields[0])
	if _, ok := knownVerbs[verb]; !ok {
		return Route{Verb: VerbUnknown, Args: fields[1:]}
	}

	return Route{Verb: verb, Args: fields[1:]}
}
