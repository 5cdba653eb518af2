package service

// VaultTaskServiceWrapper defines middleware composition for VaultTaskService.
// Implementations wrap an existing VaultTaskService to add behavior such as
// logging or validating.
type VaultTaskServiceWrapper interface {
	Wrap(VaultTaskService) VaultTaskService // returns a decorated VaultTaskService applying additional behavior
}
