// Package messages loads validation message catalogs and renders templates.
//
// A catalog maps locales to nested message trees addressed with dot-separated
// keys. Templates carry %{name} placeholders:
//
//	en:
//	  validations:
//	    invalid: "%{attribute} is invalid"
//
// Catalogs come from an Adapter: MapAdapter for in-memory data, FileAdapter
// for a single YAML or JSON file, DirectoryAdapter for every supported file in
// a directory (on disk or embedded).
//
//	catalog, err := messages.NewCatalog(ctx, messages.NewDirectoryAdapter("./locales"))
//	if err != nil {
//		return err
//	}
//	text, ok := catalog.Format("en-GB", "validations.invalid", map[string]string{
//		"attribute": "Email",
//	})
//
// Lookups fall back from a regional locale to its base language and then to
// the default locale. Resolved lookups are memoised in an LRU cache.
package messages
