package domain

type EdgeKind string

const (
	Likes   EdgeKind = "LIKES"
	Follows EdgeKind = "FOLLOWS"
)

// Endpoint identifies one side of an edge: the node label and its id property.
type Endpoint struct {
	Label string
	Key   string
}

var (
	UserNode  = Endpoint{Label: "User", Key: "id_user"}
	PinNode   = Endpoint{Label: "Pin", Key: "id_pin"}
	BoardNode = Endpoint{Label: "Board", Key: "id_board"}
)

// EdgeRule describes a toggleable edge kind.
type EdgeRule struct {
	Kind      EdgeKind
	Actor     Endpoint
	Target    Endpoint
	StampProp string
	// SelfAllowed reports whether actor and target may be the same node.
	SelfAllowed bool
}

var toggleable = map[EdgeKind]EdgeRule{
	Likes: {
		Kind:        Likes,
		Actor:       UserNode,
		Target:      PinNode,
		StampProp:   "date",
		SelfAllowed: true,
	},
	Follows: {
		Kind:      Follows,
		Actor:     UserNode,
		Target:    UserNode,
		StampProp: "since",
	},
}

// Rule returns the toggle rule for k. Only LIKES and FOLLOWS toggle.
func (k EdgeKind) Rule() (EdgeRule, bool) {
	rule, ok := toggleable[k]
	return rule, ok
}

// NodeRef points at a single node by label and id.
type NodeRef struct {
	Endpoint
	ID string
}

func (e Endpoint) Ref(id string) NodeRef {
	return NodeRef{Endpoint: e, ID: id}
}

type Toggle struct {
	Kind     EdgeKind
	ActorID  string
	TargetID string
}

// ToggleResult is the edge state after a toggle and the number of incoming
// edges of the same kind on the target.
type ToggleResult struct {
	State bool
	Count int64
}
