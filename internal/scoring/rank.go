package scoring

// Tier groups ranks into five named bands.
type Tier int

const (
	Beginner Tier = iota
	Intermediate
	Advanced
	Expert
	Legendary
)

func (t Tier) String() string {
	switch t {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	case Expert:
		return "Expert"
	case Legendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}

// MaxScore is the upper bound of the rank table's covered range, matching
// the original's u32::MAX ceiling.
const MaxScore uint32 = 4294967295

// Rank is one entry of the 63-rank table: a contiguous, inclusive score
// range within a tier.
type Rank struct {
	ID           int
	Name         string
	MinScore     uint32
	MaxScore     uint32
	Tier         Tier
	TierPosition int // 0-based position within its tier
	TierTotal    int
	OverallTotal int
}

type tierSpec struct {
	tier  Tier
	names []string
}

var tierSpecs = []tierSpec{
	{Beginner, []string{
		"Hello World", "Syntax Error", "Hello Printf", "Off By One", "Null Pointer",
		"Stack Overflow", "Segfault", "Infinite Loop", "Merge Conflict", "Rubber Duck",
		"Copy Paste", "Works On My Machine",
	}},
	{Intermediate, []string{
		"Code Reviewer", "Unit Tester", "Refactorer", "Linter", "Debugger",
		"API Designer", "Pattern Matcher", "Type Checker", "Build Engineer", "Package Manager",
		"Version Controller", "Continuous Integrator",
	}},
	{Advanced, []string{
		"Algorithm Architect", "Data Wrangler", "Concurrency Tamer", "Memory Manager", "Protocol Hacker",
		"Systems Architect", "Performance Tuner", "Security Auditor", "Database Architect", "Network Engineer",
		"Cloud Architect", "Platform Engineer",
	}},
	{Expert, []string{
		"Compiler", "Interpreter", "Optimizer", "Virtual Machine", "Garbage Collector",
		"Kernel Hacker", "Bootloader", "Assembly Wizard", "Bytecode Weaver", "Scheduler",
		"Hypervisor", "Firmware Sage",
	}},
	{Legendary, []string{
		"Root Access", "Zero Day", "Exploit Architect", "Singularity", "Quantum Coder",
		"Neural Architect", "AI Whisperer", "Turing Machine", "Halting Problem Solver", "Godlike Coder",
		"Code Deity", "Binary God", "Machine Spirit", "Digital Ascendant", "Kernel Panic",
	}},
}

// rankBounds is the hand-tuned, non-uniform (min, max) score window for each
// of the 63 ranks in ascending order. These are not evenly spaced within a
// tier; they are pinned exactly as the original rank table defines them.
var rankBounds = [63][2]uint32{
	{0, 800}, {801, 1200}, {1201, 1600}, {1601, 2000}, {2001, 2450},
	{2451, 2900}, {2901, 3300}, {3301, 3700}, {3701, 4150}, {4151, 4550},
	{4551, 5000}, {5001, 5600}, {5601, 5850}, {5851, 6000}, {6001, 6100},
	{6101, 6250}, {6251, 6400}, {6401, 6550}, {6551, 6700}, {6701, 6850},
	{6851, 7000}, {7001, 7100}, {7101, 7250}, {7251, 7500}, {7501, 7800},
	{7801, 8000}, {8001, 8100}, {8101, 8250}, {8251, 8400}, {8401, 8500},
	{8501, 8650}, {8651, 8800}, {8801, 8950}, {8951, 9100}, {9101, 9250},
	{9251, 9500}, {9501, 9800}, {9801, 9950}, {9951, 10100}, {10101, 10200},
	{10201, 10350}, {10351, 10500}, {10501, 10650}, {10651, 10800}, {10801, 10950},
	{10951, 11100}, {11101, 11200}, {11201, 11400}, {11401, 11700}, {11701, 12250},
	{12251, 12800}, {12801, 13400}, {13401, 13950}, {13951, 14500}, {14501, 15100},
	{15101, 15650}, {15651, 16200}, {16201, 16800}, {16801, 17350}, {17351, 17900},
	{17901, 18500}, {18501, 19100}, {19101, MaxScore},
}

var rankTable = buildRankTable()

func buildRankTable() []Rank {
	var table []Rank
	id := 0
	for _, spec := range tierSpecs {
		count := len(spec.names)
		for i, name := range spec.names {
			bounds := rankBounds[id]
			table = append(table, Rank{
				ID:           id,
				Name:         name,
				MinScore:     bounds[0],
				MaxScore:     bounds[1],
				Tier:         spec.tier,
				TierPosition: i,
				TierTotal:    count,
			})
			id++
		}
	}
	for i := range table {
		table[i].OverallTotal = len(table)
	}
	return table
}

// AllRanks returns the full 63-entry table in ascending score order.
func AllRanks() []Rank {
	out := make([]Rank, len(rankTable))
	copy(out, rankTable)
	return out
}

// ForScore performs the linear scan spec.rank returns the unique rank
// covering clamp(s, 0, MaxScore).
func ForScore(s float64) Rank {
	clamped := clampScore(s)
	for _, r := range rankTable {
		if clamped >= r.MinScore && clamped <= r.MaxScore {
			return r
		}
	}
	return rankTable[len(rankTable)-1]
}

func clampScore(s float64) uint32 {
	if s < 0 {
		return 0
	}
	if s >= float64(MaxScore) {
		return MaxScore
	}
	return uint32(s)
}

// OverallPosition returns the rank's 1-based index within the full table.
func (r Rank) OverallPosition() int {
	return r.ID + 1
}
