package handler

// APIV1Prefix is the base path for the public v1 API. Handlers and tests
// both build paths from it.
const APIV1Prefix = "/api/v1"
