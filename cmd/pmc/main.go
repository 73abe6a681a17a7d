/* ptpmgmt - Precision Time Protocol management messages
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/openptp/ptpmgmt/client"
	"github.com/openptp/ptpmgmt/core"
	"github.com/openptp/ptpmgmt/ptp"
	"github.com/openptp/ptpmgmt/ptp/mgmt"
)

// Version of pmc.
var Version string

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pmc [options] get <ID> | set <ID> <value> | command <ID>")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "", "Configuration file")
	var section string
	flag.StringVar(&section, "section", "", "Port section of the configuration")
	var udsPath string
	flag.StringVar(&udsPath, "uds", "", "Daemon UDS address (overrides configuration)")
	var domain int
	flag.IntVar(&domain, "domain", 0, "PTP domain number")
	var boundaryHops int
	flag.IntVar(&boundaryHops, "hops", 1, "Boundary hops")
	var useLinuxPTP bool
	flag.BoolVar(&useLinuxPTP, "linuxptp", true, "Enable linuxptp implementation-specific TLVs")
	var logFile string
	flag.StringVar(&logFile, "log-file", "", "Rotated log file (in addition to stdout)")
	var shouldPrintVersion bool
	flag.BoolVar(&shouldPrintVersion, "version", false, "Print version and exit")
	flag.Parse()

	if shouldPrintVersion {
		fmt.Println("pmc (ptpmgmt) " + Version)
		return
	}

	if configFile != "" {
		core.LoadConfig(configFile)
	}
	var sink io.Writer
	if logFile != "" {
		sink = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10,
			MaxBackups: 3,
		})
	}
	core.InitializeLogger(sink)

	args := flag.Args()
	if len(args) < 2 {
		usage()
	}
	id, ok := mgmt.IDByName(strings.ToUpper(args[1]))
	if !ok {
		fmt.Fprintln(os.Stderr, "unknown management id: "+args[1])
		os.Exit(1)
	}

	prms := mgmt.DefaultMsgParams()
	prms.DomainNumber = domain
	prms.BoundaryHops = boundaryHops
	prms.UseLinuxPTPTlvs = useLinuxPTP
	cfg := client.ConfigFromFile(section)
	if udsPath != "" {
		cfg.UDSAddress = udsPath
	}
	c, err := client.New(prms, cfg)
	if err != nil {
		core.LogFatal("pmc", "Unable to connect: "+err.Error())
	}
	defer c.Close()
	if configFile != "" {
		c.Message().UseConfig(section)
	}

	switch args[0] {
	case "get":
		tlv, err := c.Get(id)
		if err != nil {
			core.LogFatal("pmc", id.String()+" failed: "+err.Error())
		}
		render(c.Message(), tlv)
	case "set":
		if len(args) < 3 {
			usage()
		}
		tlv, err := setValue(id, args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		if err := c.Set(id, tlv); err != nil {
			core.LogFatal("pmc", id.String()+" failed: "+err.Error())
		}
		fmt.Println(id.String() + " set")
	case "command":
		if err := c.Command(id); err != nil {
			core.LogFatal("pmc", id.String()+" failed: "+err.Error())
		}
		fmt.Println(id.String() + " acknowledged")
	default:
		usage()
	}
}

// setValue builds the payload for the simple single-value SET ids.
func setValue(id mgmt.ID, arg string) (mgmt.Data, error) {
	val, err := strconv.ParseUint(arg, 0, 8)
	if err != nil {
		return nil, fmt.Errorf("bad value %q: %w", arg, err)
	}
	switch id {
	case mgmt.MID_PRIORITY1:
		return &mgmt.Priority1{Priority1: uint8(val)}, nil
	case mgmt.MID_PRIORITY2:
		return &mgmt.Priority2{Priority2: uint8(val)}, nil
	case mgmt.MID_DOMAIN:
		return &mgmt.Domain{DomainNumber: uint8(val)}, nil
	case mgmt.MID_SYNCHRONIZATION_UNCERTAIN_NP:
		return &mgmt.SynchronizationUncertainNP{Val: uint8(val)}, nil
	}
	return nil, fmt.Errorf("set of %s is not supported by this tool", id)
}

// render prints a decoded response through a typed dispatcher.
func render(msg *mgmt.Message, tlv mgmt.Data) {
	d := mgmt.NewDispatcher()
	d.NoTlv = func(*mgmt.Message) {
		fmt.Println("(empty response)")
	}
	d.NoTlvCallback = func(_ *mgmt.Message, idName string) {
		fmt.Printf("%s %+v\n", idName, tlv)
	}
	mgmt.Handle(d, func(_ *mgmt.Message, v *mgmt.DefaultDataSet) {
		fmt.Println("DEFAULT_DATA_SET")
		fmt.Printf("  twoStepFlag             %v\n", v.TwoStepFlag())
		fmt.Printf("  slaveOnly               %v\n", v.SlaveOnly())
		fmt.Printf("  numberPorts             %d\n", v.NumberPorts)
		fmt.Printf("  priority1               %d\n", v.Priority1)
		fmt.Printf("  clockClass              %d\n", v.ClockQuality.ClockClass)
		fmt.Printf("  clockAccuracy           %s\n", v.ClockQuality.ClockAccuracy)
		fmt.Printf("  offsetScaledLogVariance 0x%04x\n", v.ClockQuality.OffsetScaledLogVariance)
		fmt.Printf("  priority2               %d\n", v.Priority2)
		fmt.Printf("  clockIdentity           %s\n", v.ClockIdentity)
		fmt.Printf("  domainNumber            %d\n", v.DomainNumber)
	})
	mgmt.Handle(d, func(_ *mgmt.Message, v *mgmt.CurrentDataSet) {
		fmt.Println("CURRENT_DATA_SET")
		fmt.Printf("  stepsRemoved     %d\n", v.StepsRemoved)
		fmt.Printf("  offsetFromMaster %.1f\n", v.OffsetFromMaster.Interval())
		fmt.Printf("  meanPathDelay    %.1f\n", v.MeanPathDelay.Interval())
	})
	mgmt.Handle(d, func(_ *mgmt.Message, v *mgmt.ParentDataSet) {
		fmt.Println("PARENT_DATA_SET")
		fmt.Printf("  parentPortIdentity   %s\n", v.ParentPortIdentity)
		fmt.Printf("  grandmasterIdentity  %s\n", v.GrandmasterIdentity)
		fmt.Printf("  grandmasterPriority1 %d\n", v.GrandmasterPriority1)
		fmt.Printf("  grandmasterPriority2 %d\n", v.GrandmasterPriority2)
	})
	mgmt.Handle(d, func(_ *mgmt.Message, v *mgmt.TimePropertiesDataSet) {
		fmt.Println("TIME_PROPERTIES_DATA_SET")
		fmt.Printf("  currentUtcOffset      %d\n", v.CurrentUtcOffset)
		fmt.Printf("  currentUtcOffsetValid %v\n", ptp.IsUTCOffsetValid(v.Flags))
		fmt.Printf("  ptpTimescale          %v\n", ptp.IsPTPTimescale(v.Flags))
		fmt.Printf("  timeTraceable         %v\n", ptp.IsTimeTraceable(v.Flags))
		fmt.Printf("  frequencyTraceable    %v\n", ptp.IsFrequencyTraceable(v.Flags))
		fmt.Printf("  timeSource            %s\n", v.TimeSource)
	})
	mgmt.Handle(d, func(_ *mgmt.Message, v *mgmt.PortDataSet) {
		fmt.Println("PORT_DATA_SET")
		fmt.Printf("  portIdentity %s\n", v.PortIdentity)
		fmt.Printf("  portState    %s\n", v.PortState)
		fmt.Printf("  versionNumber %d\n", v.VersionNumber)
	})
	mgmt.Handle(d, func(_ *mgmt.Message, v *mgmt.Priority1) {
		fmt.Printf("PRIORITY1 %d\n", v.Priority1)
	})
	mgmt.Handle(d, func(_ *mgmt.Message, v *mgmt.Priority2) {
		fmt.Printf("PRIORITY2 %d\n", v.Priority2)
	})
	mgmt.Handle(d, func(_ *mgmt.Message, v *mgmt.TimeStatusNP) {
		fmt.Println("TIME_STATUS_NP")
		fmt.Printf("  masterOffset %d\n", v.MasterOffset)
		fmt.Printf("  ingressTime  %d\n", v.IngressTime)
		fmt.Printf("  gmPresent    %v\n", v.GmPresent != 0)
		fmt.Printf("  gmIdentity   %s\n", v.GmIdentity)
	})
	mgmt.Handle(d, func(_ *mgmt.Message, v *mgmt.PortStatsNP) {
		fmt.Println("PORT_STATS_NP")
		fmt.Printf("  portIdentity %s\n", v.PortIdentity)
		for i := range v.RxMsgType {
			if v.RxMsgType[i] != 0 || v.TxMsgType[i] != 0 {
				fmt.Printf("  msgType %2d rx %d tx %d\n", i, v.RxMsgType[i], v.TxMsgType[i])
			}
		}
	})
	d.Dispatch(msg)
}
