package conversation

// Resolver supplies display names and property titles for enrichment.
// Lookups are batched so the inbox view costs two queries, not one per
// thread.
type Resolver interface {
	ResolveDisplayNames(userIDs []uint64) (map[uint64]string, error)
	ResolvePropertyTitles(propertyIDs []uint64) (map[uint64]string, error)
}

// Enrich fills CounterpartDisplayName and PropertyDisplayTitle on the
// derived conversations in place. A counterpart missing from the user
// store keeps an empty name; a missing property title stays absent.
func Enrich(convs []Conversation, resolver Resolver) error {
	if len(convs) == 0 {
		return nil
	}

	userSet := make(map[uint64]struct{})
	propSet := make(map[uint64]struct{})
	for i := range convs {
		userSet[convs[i].CounterpartID] = struct{}{}
		if convs[i].PropertyID != nil {
			propSet[*convs[i].PropertyID] = struct{}{}
		}
	}

	userIDs := make([]uint64, 0, len(userSet))
	for id := range userSet {
		userIDs = append(userIDs, id)
	}
	names, err := resolver.ResolveDisplayNames(userIDs)
	if err != nil {
		return err
	}

	var titles map[uint64]string
	if len(propSet) > 0 {
		propIDs := make([]uint64, 0, len(propSet))
		for id := range propSet {
			propIDs = append(propIDs, id)
		}
		titles, err = resolver.ResolvePropertyTitles(propIDs)
		if err != nil {
			return err
		}
	}

	for i := range convs {
		convs[i].CounterpartDisplayName = names[convs[i].CounterpartID]
		if convs[i].PropertyID != nil {
			if title, ok := titles[*convs[i].PropertyID]; ok {
				convs[i].PropertyDisplayTitle = &title
			}
		}
	}

	return nil
}
