package bottombar

import (
	"fmt"

	"github.com/renato0307/convobar/internal/domain"
)

// mountStrategy says where the content for a kind comes from
type mountStrategy int

const (
	mountEmpty mountStrategy = iota
	mountReuse
	mountConstruct
)

// mountStrategies must have an entry for every domain.Kind
var mountStrategies = map[domain.Kind]mountStrategy{
	domain.KindNone:              mountEmpty,
	domain.KindInputToolbar:      mountReuse,
	domain.KindSearch:            mountReuse,
	domain.KindSelection:         mountReuse,
	domain.KindMemberRequest:     mountConstruct,
	domain.KindMessageRequest:    mountConstruct,
	domain.KindBlockingMigration: mountConstruct,
}

func strategyFor(kind domain.Kind) mountStrategy {
	s, ok := mountStrategies[kind]
	if !ok {
		panic(fmt.Sprintf("bottombar: no mount strategy for %s", kind))
	}
	return s
}

// pinningFor returns the edge policy for a kind: constructed panels render into the safe area
func pinningFor(kind domain.Kind) Pinning {
	if strategyFor(kind) == mountConstruct {
		return PinFullEdges
	}
	return PinLayoutMargins
}
