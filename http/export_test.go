package http

var SanitizePreview = sanitizePreview
