package entity

// ProviderKind identifies the source of place and geocoding data.
type ProviderKind string

const (
	// ProviderGoogle is the premium provider with ratings, prices and photos.
	ProviderGoogle ProviderKind = "google"
	// ProviderOpenStreetMap is the free provider with basic fields only.
	ProviderOpenStreetMap ProviderKind = "openstreetmap"
)

const osmAttribution = "© OpenStreetMap contributors (ODbL)"

var osmLimitations = []string{
	"No ratings or price levels",
	"No photos available",
	"Limited location accuracy",
	"Requires coordinates for search",
}

func (k ProviderKind) String() string {
	return string(k)
}

// IsPremium reports whether k is the premium provider.
func (k ProviderKind) IsPremium() bool {
	return k == ProviderGoogle
}

// Attribution returns the data license credit that must accompany results, if any.
func (k ProviderKind) Attribution() string {
	switch k {
	case ProviderOpenStreetMap:
		return osmAttribution
	case ProviderGoogle:
		return ""
	default:
		return ""
	}
}

// Limitations lists the capabilities the provider lacks.
func (k ProviderKind) Limitations() []string {
	switch k {
	case ProviderOpenStreetMap:
		out := make([]string, len(osmLimitations))
		copy(out, osmLimitations)

		return out
	case ProviderGoogle:
		return nil
	default:
		return nil
	}
}
