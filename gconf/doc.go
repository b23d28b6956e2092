/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension owns a single configuration entity stored under a key derived
from the extension name. The configuration is loaded from the genesis file and
can later be changed only by messages that the owning extension handles.

Not being able to get a configuration value is a critical condition for the
application. Extensions must return an error and never fall back to defaults.
*/
package gconf
