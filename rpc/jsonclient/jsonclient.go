// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonclient json rpc client of the duel node
package jsonclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/33cn/duel/types"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
)

var reqID uint64

// JSONClient a object of jsonclient
type JSONClient struct {
	url    string
	prefix string
	client *http.Client
}

// NewJSONClient produce a json object, the methods get the Duel prefix
func NewJSONClient(url string) (*JSONClient, error) {
	return New("Duel", url)
}

// New produce a jsonclient by perfix and url
func New(prefix, url string) (*JSONClient, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	return &JSONClient{
		url:    url,
		prefix: prefix,
		client: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type clientRequest struct {
	Method string         `json:"method"`
	Params [1]interface{} `json:"params"`
	ID     uint64         `json:"id"`
}

type clientResponse struct {
	ID     uint64           `json:"id"`
	Result *json.RawMessage `json:"result"`
	Error  interface{}      `json:"error"`
}

func addPrefix(prefix, name string) string {
	if prefix == "" || strings.Contains(name, ".") {
		return name
	}
	return prefix + "." + name
}

// Call jsonclinet call method
func (client *JSONClient) Call(method string, params, resp interface{}) error {
	req := &clientRequest{
		Method: addPrefix(client.prefix, method),
		ID:     atomic.AddUint64(&reqID, 1),
	}
	req.Params[0] = params
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	postresp, err := client.client.Post(client.url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer postresp.Body.Close()
	b, err := io.ReadAll(postresp.Body)
	if err != nil {
		return err
	}
	if postresp.StatusCode != http.StatusOK {
		return errors.Errorf("http status %d: %s", postresp.StatusCode, strings.TrimSpace(string(b)))
	}
	cresp := &clientResponse{}
	if err := json.Unmarshal(b, cresp); err != nil {
		return errors.Wrap(err, "decode response")
	}
	if cresp.Error != nil {
		x, ok := cresp.Error.(string)
		if !ok {
			return fmt.Errorf("invalid error %v", cresp.Error)
		}
		if x == "" {
			x = "unspecified error"
		}
		return errors.New(x)
	}
	if cresp.Result == nil {
		return types.ErrEmpty
	}
	if msg, ok := resp.(proto.Message); ok {
		return types.JSONToPB(*cresp.Result, msg)
	}
	return json.Unmarshal(*cresp.Result, resp)
}
