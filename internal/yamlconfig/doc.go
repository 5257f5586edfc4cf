// Package yamlconfig provides the YAML implementation of model.Loader. It
// parses the LED group document with the yaml.v3 node API, which keeps
// mapping keys in source order, and translates it into the format-agnostic
// model. Attribute values are coerced to their model types through go-cty.
package yamlconfig
