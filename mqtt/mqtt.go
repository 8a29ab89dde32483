// mqtt.go - MQTT client used to announce newly uploaded dress themes

package mqtt // Declares the package name

import ( // Import required packages
	"encoding/json" // Payload encoding
	"errors"        // Timeout error
	"fmt"           // Error wrapping
	"time"          // Timeouts

	paho "github.com/eclipse/paho.mqtt.golang" // MQTT client library
)

const timeout = 5 * time.Second // How long to wait for broker acknowledgements

// ErrTimeout is returned when the broker does not acknowledge in time.
var ErrTimeout = errors.New("mqtt: timed out waiting for broker")

// Client publishes JSON payloads to an MQTT broker.
type Client struct {
	conn paho.Client
	qos  byte
}

// Connect dials broker (e.g. "tcp://localhost:1883") and waits for the connection.
func Connect(broker, clientID string) (*Client, error) {
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true). // Let paho reconnect after broker restarts
		SetConnectTimeout(timeout)

	conn := paho.NewClient(opts)
	if err := wait(conn.Connect()); err != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", broker, err)
	}
	return &Client{conn: conn, qos: 1}, nil
}

// Publish sends payload to topic. Strings and byte slices are sent as-is; anything else is JSON-encoded.
func (c *Client) Publish(topic string, payload interface{}) error {
	body, err := encode(payload)
	if err != nil {
		return err
	}
	if err := wait(c.conn.Publish(topic, c.qos, false, body)); err != nil {
		return fmt.Errorf("mqtt publish %s: %w", topic, err)
	}
	return nil
}

// Disconnect closes the connection, giving in-flight work up to 250ms.
func (c *Client) Disconnect() {
	c.conn.Disconnect(250)
}

func encode(payload interface{}) (interface{}, error) {
	switch p := payload.(type) {
	case string, []byte:
		return p, nil
	default:
		body, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("mqtt encode payload: %w", err)
		}
		return body, nil
	}
}

func wait(token paho.Token) error {
	if !token.WaitTimeout(timeout) {
		return ErrTimeout
	}
	return token.Error()
}
