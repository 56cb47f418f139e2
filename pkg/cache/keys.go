package cache

import "fmt"

// Cache key builders, namespaced under the application prefix
const prefix = "venuehub"

func VenueListKey() string {
	return fmt.Sprintf("%s:catalog:venues", prefix)
}

func VenueKey(id string) string {
	return fmt.Sprintf("%s:catalog:venue:%s", prefix, id)
}

func ServiceListKey() string {
	return fmt.Sprintf("%s:catalog:services", prefix)
}

func ServiceKey(id string) string {
	return fmt.Sprintf("%s:catalog:service:%s", prefix, id)
}
