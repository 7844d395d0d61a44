package skyplan

// Version is the current skyplan release.
const Version = "0.1.0"
