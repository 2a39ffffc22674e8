package handler

// APIV1Prefix is the base path every public scouting endpoint mounts
// under. Handlers and tests both read it from here so the paths cannot
// drift apart.
const APIV1Prefix = "/api/v1"
