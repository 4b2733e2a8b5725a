package filter

// Default display names and series colors for the two comparison groups.
const (
	Group1Name  = "Group 1"
	Group2Name  = "Group 2"
	group1Color = "#1976d2"
	group2Color = "#9c27b0"
)

// ComparisonGroup describes one filterable subset of the dataset as consumed
// by the aggregator and the chart legend.
type ComparisonGroup struct {
	ID    int
	Name  string
	Color string
	Model Model
}

// ComparisonState holds two independent filter models and an active-group
// selector for side-by-side comparison charts. Comparison mode is a derived
// property: it is on exactly while group 2 carries conditions.
//
// The state is owned by a single UI session. It provides no internal
// synchronization; hosts that mutate it from multiple goroutines must
// serialize access themselves.
type ComparisonState struct {
	group1 Model
	group2 Model
	active int
}

// NewComparisonState returns a state with both groups empty and group 1
// active.
func NewComparisonState() *ComparisonState {
	return &ComparisonState{active: 1}
}

// UpdateGroup1 replaces group 1's filter model. The active group is
// unchanged.
func (s *ComparisonState) UpdateGroup1(m Model) { s.group1 = m }

// UpdateGroup2 replaces group 2's filter model. The active group is
// unchanged.
func (s *ComparisonState) UpdateGroup2(m Model) { s.group2 = m }

// SetActiveGroup selects which group's model ActiveModel returns, i.e. which
// group the filter UI currently edits. Neither group's stored model is
// touched; switching away from a group and back must never lose its filter.
// Values other than 1 and 2 are ignored.
func (s *ComparisonState) SetActiveGroup(g int) {
	if g == 1 || g == 2 {
		s.active = g
	}
}

// ClearGroup2 resets group 2 to the empty model and returns focus to group 1.
// Exiting comparison mode always leaves group 1 active.
func (s *ComparisonState) ClearGroup2() {
	s.group2 = Model{}
	s.active = 1
}

// ActiveGroup returns the selected group, 1 or 2.
func (s *ComparisonState) ActiveGroup() int { return s.active }

// ActiveModel returns the filter model of the active group.
func (s *ComparisonState) ActiveModel() Model {
	if s.active == 2 {
		return s.group2
	}

	return s.group1
}

// Group1 returns group 1's stored filter model.
func (s *ComparisonState) Group1() Model { return s.group1 }

// Group2 returns group 2's stored filter model.
func (s *ComparisonState) Group2() Model { return s.group2 }

// ComparisonMode reports whether group 2 carries any conditions.
func (s *ComparisonState) ComparisonMode() bool { return !s.group2.Empty() }

// Groups returns the comparison groups for the aggregator: always group 1,
// plus group 2 while comparison mode is on.
func (s *ComparisonState) Groups() []ComparisonGroup {
	groups := []ComparisonGroup{
		{ID: 1, Name: Group1Name, Color: group1Color, Model: s.group1},
	}
	if s.ComparisonMode() {
		groups = append(groups, ComparisonGroup{ID: 2, Name: Group2Name, Color: group2Color, Model: s.group2})
	}

	return groups
}
