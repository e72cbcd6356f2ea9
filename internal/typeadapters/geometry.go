/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements. See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License. You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package typeadapters

import (
	"encoding/hex"
	"fmt"
	"github.com/go-errors/errors"
	"github.com/goccy/go-json"
	"github.com/noctarius/pgdialect/spi/datatypes"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/geojson"
	"strings"
)

// geometryType covers GEOMETRY and GEOGRAPHY. Values travel as
// GeoJSON wrapped into ST_GeomFromGeoJSON on the way in, and as
// hex encoded EWKB decoded back to GeoJSON on the way out; raw
// WKT/WKB never passes through the binding path.
type geometryType struct {
	id               datatypes.TypeID
	sqlName          string
	uppercaseSubType bool
	opts             *datatypes.Options
}

func (t *geometryType) ID() datatypes.TypeID {
	return t.id
}

func (t *geometryType) Options() *datatypes.Options {
	return t.opts
}

func (t *geometryType) SQLType() (string, error) {
	if t.opts.GeometryType == nil {
		return t.sqlName, nil
	}

	subType := *t.opts.GeometryType
	if t.uppercaseSubType {
		subType = strings.ToUpper(subType)
	}

	if t.opts.Srid != nil {
		return fmt.Sprintf("%s(%s,%d)", t.sqlName, subType, *t.opts.Srid), nil
	}
	return fmt.Sprintf("%s(%s)", t.sqlName, subType), nil
}

func (t *geometryType) BindableValue(
	value any,
) (any, error) {

	serialized, err := t.toGeoJson(value)
	if err != nil {
		return nil, err
	}
	return datatypes.Literal(
		fmt.Sprintf("ST_GeomFromGeoJSON(%s)", QuoteLiteral(serialized)),
	), nil
}

func (t *geometryType) Escape(
	value any, escape datatypes.EscapeFunc,
) (string, error) {

	serialized, err := t.toGeoJson(value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ST_GeomFromGeoJSON(%s)", escape(serialized)), nil
}

func (t *geometryType) BindParam(
	value any, bind datatypes.BindFunc,
) (string, error) {

	serialized, err := t.toGeoJson(value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ST_GeomFromGeoJSON(%s)", bind(serialized)), nil
}

// Parse decodes a hex encoded EWKB payload into GeoJSON with a
// short CRS identifier when a SRID is present.
func (t *geometryType) Parse(
	raw any,
) (any, error) {

	text, ok := rawText(raw)
	if !ok {
		return nil, errors.Errorf("geometry value must be textual, got %T", raw)
	}

	data, err := hex.DecodeString(text)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	geometry, err := ewkb.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	opts := make([]geojson.EncodeGeometryOption, 0, 1)
	if srid := geometry.SRID(); srid != 0 {
		opts = append(opts, geojson.EncodeGeometryWithCRS(&geojson.CRS{
			Type: "name",
			Properties: map[string]any{
				"name": fmt.Sprintf("EPSG:%d", srid),
			},
		}))
	}

	serialized, err := geojson.Marshal(geometry, opts...)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	var value map[string]any
	if err := json.Unmarshal(serialized, &value); err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return value, nil
}

func (t *geometryType) toGeoJson(
	value any,
) (string, error) {

	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case geom.T:
		serialized, err := geojson.Marshal(v)
		if err != nil {
			return "", errors.Wrap(err, 0)
		}
		return string(serialized), nil
	}

	serialized, err := json.Marshal(value)
	if err != nil {
		return "", errors.Wrap(err, 0)
	}
	return string(serialized), nil
}
