package constants

// ProjectConfigFileName is the optional project config file at the repository top level.
const ProjectConfigFileName = ".githooks.yaml"
