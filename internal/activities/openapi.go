package activities

import "github.com/JaimeStill/activity-signup/pkg/openapi"

type spec struct {
	List       *openapi.Operation
	Find       *openapi.Operation
	Signup     *openapi.Operation
	Unregister *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List activities",
		Description: "Returns every activity keyed by name",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Activities keyed by name", "ActivityMap"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Get activity",
		Description: "Returns a single activity",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("activity_name", "Activity name"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Activity", "Activity"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Signup: &openapi.Operation{
		Summary:     "Sign up for activity",
		Description: "Adds a participant email to an activity",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("activity_name", "Activity name"),
			openapi.QueryParam("email", "string", "Participant email", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Signup confirmation", "Message"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Unregister: &openapi.Operation{
		Summary:     "Unregister from activity",
		Description: "Removes a participant email from an activity",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("activity_name", "Activity name"),
			openapi.QueryParam("email", "string", "Participant email", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Unregister confirmation", "Message"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	one := 1
	return map[string]*openapi.Schema{
		"Activity": {
			Type:     "object",
			Required: []string{"description", "schedule", "max_participants", "participants"},
			Properties: map[string]*openapi.Schema{
				"description":      {Type: "string", Example: "Learn strategies and compete in chess tournaments"},
				"schedule":         {Type: "string", Example: "Fridays, 3:30 PM - 5:00 PM"},
				"max_participants": {Type: "integer", Minimum: &one, Example: 12},
				"participants":     {Type: "array", Items: &openapi.Schema{Type: "string", Format: "email"}},
			},
		},
		"ActivityMap": {
			Type:                 "object",
			AdditionalProperties: openapi.SchemaRef("Activity"),
		},
	}
}
