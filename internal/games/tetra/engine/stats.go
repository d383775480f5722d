package engine

// Statistics are the per-game counters maintained by Game. All counts are
// cumulative from the start of the game.
type Statistics struct {
	Minos     int `json:"minos" yaml:"minos"`
	Holds     int `json:"holds" yaml:"holds"`
	HardDrops int `json:"hard_drops" yaml:"hard_drops"`

	MovesLeft      int `json:"moves_left" yaml:"moves_left"`
	MovesRight     int `json:"moves_right" yaml:"moves_right"`
	DropDistance   int `json:"drop_distance" yaml:"drop_distance"`
	RotationsLeft  int `json:"rotations_left" yaml:"rotations_left"`
	RotationsRight int `json:"rotations_right" yaml:"rotations_right"`

	ClearedLines  int `json:"cleared_lines" yaml:"cleared_lines"`
	Singles       int `json:"singles" yaml:"singles"`
	Doubles       int `json:"doubles" yaml:"doubles"`
	Triples       int `json:"triples" yaml:"triples"`
	Tetrises      int `json:"tetrises" yaml:"tetrises"`
	PerfectClears int `json:"perfect_clears" yaml:"perfect_clears"`

	TSpins   [NumTSpinKinds]int `json:"tspins" yaml:"tspins"` // indexed by TSpin; TSpinNone is unused
	AllSpins int                `json:"all_tspins" yaml:"all_tspins"`

	BackToBack      int `json:"back_to_back" yaml:"back_to_back"`
	TotalBackToBack int `json:"total_back_to_back" yaml:"total_back_to_back"`
	MaxBackToBack   int `json:"max_back_to_back" yaml:"max_back_to_back"`

	Ren         int `json:"ren" yaml:"ren"`
	RenLines    int `json:"ren_lines" yaml:"ren_lines"`
	TotalRen    int `json:"total_ren" yaml:"total_ren"`
	MaxRen      int `json:"max_ren" yaml:"max_ren"`
	MaxRenLines int `json:"max_ren_lines" yaml:"max_ren_lines"`
}

// TSpinCount returns how many locks were classified as t.
func (s *Statistics) TSpinCount(t TSpin) int {
	if t <= TSpinNone || int(t) >= NumTSpinKinds {
		return 0
	}
	return s.TSpins[t]
}

func (s *Statistics) countLines(n int) {
	switch n {
	case 1:
		s.Singles++
	case 2:
		s.Doubles++
	case 3:
		s.Triples++
	case 4:
		s.Tetrises++
	}
}

// closeBackToBack ends a back-to-back chain. The first qualifying clear only
// opens a chain, so the stored count is one ahead of the chain length.
func (s *Statistics) closeBackToBack() {
	if s.BackToBack > 0 {
		s.BackToBack--
	}
	s.TotalBackToBack += s.BackToBack
	s.MaxBackToBack = max(s.MaxBackToBack, s.BackToBack)
	s.BackToBack = 0
}

// closeRen ends a REN chain, folding it into the totals the same way.
func (s *Statistics) closeRen() {
	if s.Ren > 0 {
		s.Ren--
	}
	s.TotalRen += s.Ren
	s.MaxRen = max(s.MaxRen, s.Ren)
	s.MaxRenLines = max(s.MaxRenLines, s.RenLines)
	s.Ren = 0
	s.RenLines = 0
}
