package picking

import (
	"errors"
	"fmt"
	"slices"
)

// ErrTruncatedHitRecord is returned when the record stream ends mid-record.
var ErrTruncatedHitRecord = errors.New("picking: truncated hit record")

// HitRecord is one entry of the selection buffer: the name stack of a
// primitive that passed the restricted projection, plus its window depth range.
type HitRecord struct {
	MinDepth uint32
	MaxDepth uint32
	Names    []uint32
}

// ParseHitRecords walks the selection buffer strictly in order. Each record is
// {nameCount, minDepth, maxDepth, names...}. A negative hit count means the
// backend overflowed the buffer; in that case every complete record that fits
// is returned.
func ParseHitRecords(hits int, buf []uint32) ([]HitRecord, error) {
	overflow := hits < 0
	records := make([]HitRecord, 0, max(hits, 0))

	pos := 0
	for i := 0; overflow || i < hits; i++ {
		if pos+3 > len(buf) {
			if overflow {
				break
			}
			return records, fmt.Errorf("%w: record %d header at offset %d", ErrTruncatedHitRecord, i, pos)
		}
		count := int(buf[pos])
		rec := HitRecord{MinDepth: buf[pos+1], MaxDepth: buf[pos+2]}
		pos += 3
		if pos+count > len(buf) {
			if overflow {
				break
			}
			return records, fmt.Errorf("%w: record %d wants %d names at offset %d", ErrTruncatedHitRecord, i, count, pos)
		}
		rec.Names = slices.Clone(buf[pos : pos+count])
		pos += count
		records = append(records, rec)
	}
	return records, nil
}

// HitRecordIDs collects every name of every record. Depth is ignored: all hits
// count, not only the nearest one.
func HitRecordIDs(records []HitRecord) []uint32 {
	seen := make(map[uint32]struct{})
	for _, rec := range records {
		for _, name := range rec.Names {
			if name == NoObject {
				continue
			}
			seen[name] = struct{}{}
		}
	}
	return sortedIDs(seen)
}

// Depth returns the depth bounds mapped to [0, 1].
func (h HitRecord) Depth() (minZ, maxZ float64) {
	const scale = float64(^uint32(0))
	return float64(h.MinDepth) / scale, float64(h.MaxDepth) / scale
}
