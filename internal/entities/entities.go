package entities

import (
	"bytes"
	"encoding/gob"
)

// Marshal encodes the order view for the read cache.
func (o *OrderDetails) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *OrderDetails) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(OrderDetails{})
	gob.Register(OrderItemDetails{})
	gob.Register(Product{})
	gob.Register(Category{})
	gob.Register(UserRef{})
}
