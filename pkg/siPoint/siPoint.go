package sipoint

import (
	"fmt"
	"sync"
	"time"

	influx "github.com/influxdata/line-protocol/v2/lineprotocol"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	siunits "github.com/siquant/siquant/pkg/siUnits"
)

// Point is a named measurement sample carrying a quantity and a
// timestamp. On the wire the displayed symbol travels as the "unit"
// tag and the base-unit magnitude as the "value" field, so samples of
// the same physical quantity stay comparable regardless of the prefix
// they were recorded with.
type Point struct {
	name     string
	tags     map[string]string
	quantity siunits.Quantity
	tm       time.Time
}

// unit tag and value field names used on the wire
const (
	unitTag    = "unit"
	valueField = "value"
)

func NewPoint(name string, tags map[string]string, quantity siunits.Quantity, tm time.Time) (*Point, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("point requires a name")
	}
	p := &Point{
		name:     name,
		tags:     make(map[string]string, len(tags)),
		quantity: quantity,
		tm:       tm,
	}
	for key, value := range tags {
		if key == unitTag {
			return nil, fmt.Errorf("tag %q is reserved", unitTag)
		}
		p.tags[key] = value
	}
	return p, nil
}

func (p *Point) Name() string {
	return p.name
}

// GetTag returns the value of a tag and whether the tag is set.
func (p *Point) GetTag(key string) (string, bool) {
	value, ok := p.tags[key]
	return value, ok
}

// AddTag sets a tag, overwriting a previous value.
func (p *Point) AddTag(key, value string) {
	p.tags[key] = value
}

func (p *Point) Quantity() siunits.Quantity {
	return p.quantity
}

func (p *Point) Time() time.Time {
	return p.tm
}

func (p *Point) String() string {
	return fmt.Sprintf("%s %s %s", p.name, p.quantity, p.tm.UTC().Format(time.RFC3339Nano))
}

// Encoder batches points into influx line protocol. It is safe for
// concurrent use.
type Encoder struct {
	encoder influx.Encoder
	// protects encoder and records
	encoderLock sync.Mutex
	// number of records stored in the encoder
	records int
}

func NewEncoder() *Encoder {
	e := &Encoder{}
	e.encoder.SetPrecision(influx.Nanosecond)
	return e
}

// Encode appends a point to the batch. Tags are written in lexical
// order as the line protocol requires.
func (e *Encoder) Encode(p *Point) error {
	tags := make(map[string]string, len(p.tags)+1)
	for key, value := range p.tags {
		tags[key] = value
	}
	tags[unitTag] = p.quantity.Symbol()
	keys := maps.Keys(tags)
	slices.Sort(keys)

	value, ok := influx.NewValue(p.quantity.Value())
	if !ok {
		return fmt.Errorf("value %v of point %q cannot be encoded", p.quantity.Value(), p.name)
	}

	e.encoderLock.Lock()
	defer e.encoderLock.Unlock()

	e.encoder.StartLine(p.name)
	for _, key := range keys {
		e.encoder.AddTag(key, tags[key])
	}
	e.encoder.AddField(valueField, value)
	e.encoder.EndLine(p.tm)

	if err := e.encoder.Err(); err != nil {
		e.encoder.Reset()
		e.records = 0
		return fmt.Errorf("encoding failed: %v", err)
	}
	e.records++
	return nil
}

// Records returns the number of points in the batch.
func (e *Encoder) Records() int {
	e.encoderLock.Lock()
	defer e.encoderLock.Unlock()
	return e.records
}

// Bytes returns the encoded batch and resets the encoder.
func (e *Encoder) Bytes() []byte {
	e.encoderLock.Lock()
	defer e.encoderLock.Unlock()
	buf := slices.Clone(e.encoder.Bytes())
	e.encoder.Reset()
	e.records = 0
	return buf
}

// Decode parses a line protocol batch produced by Encode back into
// points. The quantity of each point is rebuilt in the unit and prefix
// named by its "unit" tag.
func Decode(buf []byte) ([]*Point, error) {
	points := []*Point{}
	decoder := influx.NewDecoderWithBytes(buf)
	for decoder.Next() {
		name, err := decoder.Measurement()
		if err != nil {
			return nil, fmt.Errorf("failed to decode measurement name: %v", err)
		}

		tags := make(map[string]string)
		symbol := ""
		for {
			key, value, err := decoder.NextTag()
			if err != nil {
				return nil, fmt.Errorf("failed to decode tag: %v", err)
			}
			if key == nil {
				break
			}
			if string(key) == unitTag {
				symbol = string(value)
				continue
			}
			tags[string(key)] = string(value)
		}

		quantity, found := siunits.Quantity{}, false
		for {
			key, value, err := decoder.NextField()
			if err != nil {
				return nil, fmt.Errorf("failed to decode field: %v", err)
			}
			if key == nil {
				break
			}
			if string(key) != valueField {
				continue
			}
			fv, ok := value.Interface().(float64)
			if !ok {
				return nil, fmt.Errorf("field %q of point %q is not a float", valueField, name)
			}
			quantity, err = rebuildQuantity(fv, symbol)
			if err != nil {
				return nil, err
			}
			found = true
		}
		if !found {
			return nil, fmt.Errorf("point %q carries no %q field", name, valueField)
		}

		tm, err := decoder.Time(influx.Nanosecond, time.Time{})
		if err != nil {
			return nil, fmt.Errorf("failed to decode timestamp: %v", err)
		}

		point, err := NewPoint(string(name), tags, quantity, tm)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

// rebuildQuantity expresses a base-unit value in the unit and prefix
// named by symbol.
func rebuildQuantity(value float64, symbol string) (siunits.Quantity, error) {
	if symbol == "" {
		return siunits.NewQuantity(siunits.NewNumber(value), siunits.Custom("")), nil
	}
	prefix, unit, err := siunits.ParseSymbol(symbol)
	if err != nil {
		return siunits.Quantity{}, err
	}
	q, err := siunits.NewQuantity(siunits.NewNumber(value), unit.Base()).ToUnit(unit)
	if err != nil {
		return siunits.Quantity{}, err
	}
	return q.ToPrefix(prefix), nil
}
