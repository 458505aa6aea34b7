package sink

import (
	"errors"

	"github.com/sanodmendis/ShuffleRooster/types"
)

func samplePartition() *types.Partition {
	rec := func(fields ...string) types.Record { return types.Record{Fields: fields} }

	return &types.Partition{
		ID:        "run-1",
		Header:    []string{"Name", "Email"},
		GroupSize: 2,
		Assignments: []types.Assignment{
			{Index: 2, Record: rec("Grace", "grace@example.com"), Group: 1},
			{Index: 0, Record: rec("Ada", "ada@example.com"), Group: 1},
			{Index: 1, Record: rec("Linus", "linus@example.com"), Group: 2},
		},
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}
