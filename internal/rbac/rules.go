package rbac

// Default policy for the screening service. Reviewers read results and
// export reports; applicants only see their own test surface.
var RolePermissions = map[string][]string{
	"applicant": {
		"question:view",
		"applicant:submit",
	},
	"reviewer": {
		"applicant:view",
		"question:view",
		"reference:view",
		"settings:view",
		"evaluation:view",
		"report:export",
	},
	"admin": {
		"*", // everything
	},
}
