package platform

// Package platform contains OS integration glue: filesystem helpers and
// revealing the backing file in the system file manager.
