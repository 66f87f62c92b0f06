package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/robotalks/mazebot/pkg/radio/mqtt"
)

var (
	mqttURL = "mqtt://localhost:1883/mazebot/"
)

func init() {
	if val := os.Getenv("MAZEBOT_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}
	defer q.Close()

	q.Sub("+/+"+mqtt.RadioTopicSuffix, mqtt.Handler(func(topic string, payload []byte) {
		name := strings.TrimSuffix(topic, mqtt.RadioTopicSuffix)
		log.Printf("%s: %s", name, payload)
	}))
	<-(chan struct{})(nil)
}
