package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for stored entities. Written by hand against the mus-go
// serializer API: the persisted struct set is small and stable enough that
// a code generation step is not worth carrying.

var (
	// IDMUS serializes ID values.
	IDMUS = idMUS{}

	// AssessmentMUS serializes Assessment values.
	AssessmentMUS = assessmentMUS{}

	vectorMUS = ord.NewSliceSer[float32](raw.Float32)
	timeMUS   = raw.TimeUnixMilli
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type assessmentMUS struct{}

func (assessmentMUS) Marshal(a Assessment, bs []byte) (n int) {
	n = IDMUS.Marshal(a.Id, bs)
	n += ord.String.Marshal(a.Name, bs[n:])
	n += ord.String.Marshal(a.URL, bs[n:])
	n += ord.String.Marshal(a.Description, bs[n:])
	n += ord.String.Marshal(a.Duration, bs[n:])
	n += varint.Int.Marshal(a.DurationMinutes, bs[n:])
	n += ord.String.Marshal(a.RemoteTesting, bs[n:])
	n += ord.String.Marshal(a.AdaptiveIRT, bs[n:])
	n += ord.String.Marshal(a.TestType, bs[n:])
	n += vectorMUS.Marshal(a.Vector, bs[n:])
	n += timeMUS.Marshal(a.InsertedAt, bs[n:])
	n += timeMUS.Marshal(a.UpdatedAt, bs[n:])
	return n
}

func (assessmentMUS) Unmarshal(bs []byte) (a Assessment, n int, err error) {
	var n1 int
	if a.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return a, n, err
	}
	if a.Name, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.URL, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.Description, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.Duration, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.DurationMinutes, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.RemoteTesting, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.AdaptiveIRT, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.TestType, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.Vector, n1, err = vectorMUS.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.InsertedAt, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	if a.UpdatedAt, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
		return a, n + n1, err
	}
	n += n1
	return a, n, nil
}

func (assessmentMUS) Size(a Assessment) (size int) {
	size = IDMUS.Size(a.Id)
	size += ord.String.Size(a.Name)
	size += ord.String.Size(a.URL)
	size += ord.String.Size(a.Description)
	size += ord.String.Size(a.Duration)
	size += varint.Int.Size(a.DurationMinutes)
	size += ord.String.Size(a.RemoteTesting)
	size += ord.String.Size(a.AdaptiveIRT)
	size += ord.String.Size(a.TestType)
	size += vectorMUS.Size(a.Vector)
	size += timeMUS.Size(a.InsertedAt)
	size += timeMUS.Size(a.UpdatedAt)
	return size
}
